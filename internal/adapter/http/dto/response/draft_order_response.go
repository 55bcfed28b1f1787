package response

import (
	"time"

	"furnicraft/internal/domain/entities"
)

type DraftOrderResponse struct {
	ID              string                 `json:"id"`
	OrderNumber     string                 `json:"order_number"`
	CustomerID      string                 `json:"customer_id"`
	ProductID       string                 `json:"product_id"`
	Category        string                 `json:"category"`
	Configuration   entities.Configuration `json:"configuration"`
	CalculatedPrice float64                `json:"calculated_price"`
	Breakdown       PriceBreakdownResponse `json:"breakdown"`
	Status          string                 `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func FromDraftOrder(d entities.DraftOrder) DraftOrderResponse {
	return DraftOrderResponse{
		ID:              d.ID,
		OrderNumber:     d.OrderNumber,
		CustomerID:      d.CustomerID,
		ProductID:       d.ProductID,
		Category:        string(d.Category),
		Configuration:   d.Configuration,
		CalculatedPrice: money(d.CalculatedPrice),
		Breakdown:       FromPriceBreakdown(d.Breakdown),
		Status:          string(d.Status),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func FromDraftOrders(drafts []entities.DraftOrder) []DraftOrderResponse {
	out := make([]DraftOrderResponse, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, FromDraftOrder(d))
	}
	return out
}
