package routes

import (
	"furnicraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathDrafts   = "/drafts"
	PathCheckout = "/checkout"
)

func addStorefrontRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, draftHandler *handlers.DraftHandler, checkoutHandler *handlers.CheckoutHandler) {
	rg.POST(PathQuotes, quoteHandler.Quote)

	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.AddToCart)
		drafts.GET("", draftHandler.ListCart)
		drafts.DELETE("/:id", draftHandler.RemoveFromCart)
	}

	rg.POST(PathCheckout, checkoutHandler.Checkout)
}
