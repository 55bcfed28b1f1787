package handlers

import (
	"errors"
	"log"
	"net/http"

	request "furnicraft/internal/adapter/http/dto/request"
	response "furnicraft/internal/adapter/http/dto/response"
	"furnicraft/internal/usecase"
	"furnicraft/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles the cart-to-order decomposition.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Checkout confirms the selected drafts into one sale order plus its
// job cards. The operation is atomic: any persistence failure rolls
// everything back and the drafts stay in the cart.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	customerID := payload.ResolveCustomerID()
	log.Printf("[checkout][handler] start customer_id=%s drafts=%d", customerID, len(payload.DraftIDs))

	order, cards, err := h.usecase.Checkout(c.Request.Context(), customerID, payload.DraftIDs, payload.AttemptKey)
	if err != nil {
		log.Printf("[checkout][handler] failed customer_id=%s err=%v", customerID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] success customer_id=%s order_number=%s job_cards=%d", customerID, order.OrderNumber, len(cards))

	c.JSON(http.StatusCreated, response.FromCheckout(order, cards))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoDraftsSelected):
		return pkg.NewDomainErrorSimple("NO_DRAFTS_SELECTED", "No drafts selected for checkout", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutConflict):
		return pkg.NewDomainErrorSimple("CHECKOUT_CONFLICT", "An order for this checkout attempt already exists", http.StatusConflict)
	default:
		return mapDraftError(err)
	}
}
