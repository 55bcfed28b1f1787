package handlers

import (
	"errors"
	"net/http"

	request "furnicraft/internal/adapter/http/dto/request"
	response "furnicraft/internal/adapter/http/dto/response"
	"furnicraft/internal/domain/catalog"
	"furnicraft/internal/domain/fabricplan"
	"furnicraft/internal/domain/pricing"
	"furnicraft/internal/usecase"
	"furnicraft/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles live pricing requests from the configurator.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Quote validates and prices one configuration. The request's
// generation tag is echoed back untouched; stale responses are the
// client's problem to discard, not the server's to suppress.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.Quote(c.Request.Context(), payload.Configuration.ToEntity())
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(payload.Generation, breakdown))
}

// mapConfigurationError translates validation and pricing failures for
// every endpoint that evaluates a configuration (quote, add-to-cart,
// checkout).
func mapConfigurationError(err error) *pkg.AppError {
	var unallocated *fabricplan.UnallocatedSectionError
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, catalog.ErrUnknownCategory):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATEGORY", "Unknown product category", http.StatusBadRequest)
	case errors.Is(err, catalog.ErrInvalidConfiguration):
		return pkg.NewDomainError("INVALID_CONFIGURATION", "Configuration failed validation", err, http.StatusUnprocessableEntity)
	case errors.Is(err, catalog.ErrUnknownReference):
		return pkg.NewDomainError("UNKNOWN_REFERENCE", "Configuration references unknown catalog data", err, http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found or inactive", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettingsNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_SETTINGS_NOT_FOUND", "Category settings not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrCalculation):
		return pkg.NewDomainError("UNPRICEABLE_CONFIGURATION", "Configuration cannot be priced with current settings", err, http.StatusUnprocessableEntity)
	case errors.As(err, &unallocated):
		return pkg.NewDomainError("UNALLOCATED_SECTION", "Configuration contains a section with no fabric allowance", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
