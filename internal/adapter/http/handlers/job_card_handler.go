package handlers

import (
	"log"
	"net/http"

	request "furnicraft/internal/adapter/http/dto/request"
	response "furnicraft/internal/adapter/http/dto/response"
	"furnicraft/internal/domain/entities"
	"furnicraft/internal/usecase"
	"furnicraft/pkg"

	"github.com/gin-gonic/gin"
)

// JobCardHandler is the factory-floor boundary: card reads and status
// updates.

type JobCardHandler struct {
	usecase usecase.IProductionUseCase
}

func NewJobCardHandler(uc usecase.IProductionUseCase) *JobCardHandler {
	return &JobCardHandler{usecase: uc}
}

func (h *JobCardHandler) GetJobCard(c *gin.Context) {
	card, err := h.usecase.GetJobCard(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(card))
}

// UpdateJobCardStatus moves one card across the floor. Card status is
// the only mutable part of a card; everything else is a
// decomposition-time snapshot.
func (h *JobCardHandler) UpdateJobCardStatus(c *gin.Context) {
	number := c.Param("number")

	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	card, err := h.usecase.UpdateJobCardStatus(c.Request.Context(), number, entities.JobCardStatus(payload.ResolveStatus()))
	if err != nil {
		log.Printf("[jobcard][handler] update failed job_card=%s err=%v", number, err)
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[jobcard][handler] update success job_card=%s status=%s", card.JobCardNumber, card.Status)

	c.JSON(http.StatusOK, response.FromJobCard(card))
}
