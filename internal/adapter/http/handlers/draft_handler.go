package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "furnicraft/internal/adapter/http/dto/request"
	response "furnicraft/internal/adapter/http/dto/response"
	"furnicraft/internal/usecase"
	"furnicraft/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
)

// DraftHandler handles the cart: saved configurations awaiting
// checkout.

type DraftHandler struct {
	usecase usecase.IDraftOrderUseCase
}

func NewDraftHandler(uc usecase.IDraftOrderUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

// AddToCart validates, prices and saves a configuration as a draft
// order owned by the requesting customer.
func (h *DraftHandler) AddToCart(c *gin.Context) {
	var payload request.AddToCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.AddToCart(c.Request.Context(), payload.ResolveCustomerID(), payload.Configuration.ToEntity())
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDraftOrder(draft))
}

// ListCart returns every draft of the customer given in the
// customer_id query parameter.
func (h *DraftHandler) ListCart(c *gin.Context) {
	customerID := strings.TrimSpace(c.Query("customer_id"))
	if customerID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "customer_id is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	drafts, err := h.usecase.ListCart(c.Request.Context(), customerID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraftOrders(drafts))
}

// RemoveFromCart deletes one draft, provided it still belongs to the
// requesting customer and was not confirmed by a checkout.
func (h *DraftHandler) RemoveFromCart(c *gin.Context) {
	draftID := c.Param("id")
	customerID := strings.TrimSpace(c.Query("customer_id"))

	if err := h.usecase.RemoveFromCart(c.Request.Context(), customerID, draftID); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidDraftID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftNotOwned):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_OWNED", "Draft order belongs to another customer", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDraftAlreadyConfirmed):
		return pkg.NewDomainErrorSimple("DRAFT_ALREADY_CONFIRMED", "Draft order already confirmed", http.StatusConflict)
	default:
		return mapConfigurationError(err)
	}
}
