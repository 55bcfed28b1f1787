package handlers

import (
	"errors"
	"net/http"

	request "furnicraft/internal/adapter/http/dto/request"
	response "furnicraft/internal/adapter/http/dto/response"
	"furnicraft/internal/domain/entities"
	"furnicraft/internal/usecase"
	"furnicraft/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles sale order reads and status transitions.

type OrderHandler struct {
	usecase usecase.IProductionUseCase
}

func NewOrderHandler(uc usecase.IProductionUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSaleOrder(order))
}

// UpdateOrderStatus applies one transition of the sale order state
// machine. Illegal edges are rejected, not coerced.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrderStatus(c.Request.Context(), c.Param("order_number"), entities.SaleOrderStatus(payload.ResolveStatus()))
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSaleOrder(order))
}

// ReleaseForProduction moves a customer-confirmed order to
// ready_for_production and cascades the status to its job cards.
func (h *OrderHandler) ReleaseForProduction(c *gin.Context) {
	order, cards, err := h.usecase.ReleaseForProduction(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRelease(order, cards))
}

// ListJobCards returns the job cards decomposed from one sale order.
func (h *OrderHandler) ListJobCards(c *gin.Context) {
	cards, err := h.usecase.ListJobCards(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobCards(cards))
}

func mapProductionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber), errors.Is(err, usecase.ErrInvalidJobCardNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Sale order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobCardNotFound):
		return pkg.NewDomainErrorSimple("JOB_CARD_NOT_FOUND", "Job card not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Status transition not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotConfirmed):
		return pkg.NewDomainErrorSimple("ORDER_NOT_CONFIRMED", "Order is not customer-confirmed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
