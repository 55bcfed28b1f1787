package response

import (
	"time"

	"furnicraft/internal/domain/entities"
)

type JobCardResponse struct {
	JobCardNumber   string                          `json:"job_card_number"`
	SaleOrderNumber string                          `json:"sale_order_number"`
	LineItemID      string                          `json:"line_item_id"`
	Category        string                          `json:"category"`
	SectionType     string                          `json:"section_type"`
	UnitIndex       int                             `json:"unit_index"`
	FabricPlan      FabricPlanResponse              `json:"fabric_plan"`
	Specification   entities.TechnicalSpecification `json:"specification"`
	Status          string                          `json:"status"`
	Priority        string                          `json:"priority"`
	CreatedAt       time.Time                       `json:"created_at"`
	UpdatedAt       time.Time                       `json:"updated_at"`
}

func FromJobCard(c entities.JobCard) JobCardResponse {
	return JobCardResponse{
		JobCardNumber:   c.JobCardNumber,
		SaleOrderNumber: c.SaleOrderNumber,
		LineItemID:      c.LineItemID,
		Category:        string(c.Category),
		SectionType:     c.SectionType,
		UnitIndex:       c.UnitIndex,
		FabricPlan:      FromFabricPlan(c.FabricPlan),
		Specification:   c.Specification,
		Status:          string(c.Status),
		Priority:        string(c.Priority),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func FromJobCards(cards []entities.JobCard) []JobCardResponse {
	out := make([]JobCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, FromJobCard(c))
	}
	return out
}

// ReleaseResponse reports the cascade of a release-for-production call.
type ReleaseResponse struct {
	Order    SaleOrderResponse `json:"order"`
	JobCards []JobCardResponse `json:"job_cards"`
}

func FromRelease(o entities.SaleOrder, cards []entities.JobCard) ReleaseResponse {
	return ReleaseResponse{
		Order:    FromSaleOrder(o),
		JobCards: FromJobCards(cards),
	}
}
