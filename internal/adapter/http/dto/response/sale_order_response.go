package response

import (
	"time"

	"furnicraft/internal/domain/entities"
)

type LineItemResponse struct {
	ID            string                 `json:"id"`
	DraftOrderID  string                 `json:"draft_order_id"`
	ProductID     string                 `json:"product_id"`
	Category      string                 `json:"category"`
	Configuration entities.Configuration `json:"configuration"`
	Breakdown     PriceBreakdownResponse `json:"breakdown"`
	FabricPlan    FabricPlanResponse     `json:"fabric_plan"`
	Total         float64                `json:"total"`
}

type SaleOrderResponse struct {
	OrderNumber   string             `json:"order_number"`
	CustomerID    string             `json:"customer_id"`
	LineItems     []LineItemResponse `json:"line_items"`
	Subtotal      float64            `json:"subtotal"`
	Discount      float64            `json:"discount"`
	Total         float64            `json:"total"`
	AdvanceAmount float64            `json:"advance_amount"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromSaleOrder(o entities.SaleOrder) SaleOrderResponse {
	items := make([]LineItemResponse, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, LineItemResponse{
			ID:            li.ID,
			DraftOrderID:  li.DraftOrderID,
			ProductID:     li.ProductID,
			Category:      string(li.Category),
			Configuration: li.Configuration,
			Breakdown:     FromPriceBreakdown(li.Breakdown),
			FabricPlan:    FromFabricPlan(li.FabricPlan),
			Total:         money(li.Total),
		})
	}
	return SaleOrderResponse{
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		LineItems:     items,
		Subtotal:      money(o.Subtotal),
		Discount:      money(o.Discount),
		Total:         money(o.Total),
		AdvanceAmount: money(o.AdvanceAmount),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// CheckoutResponse is the decomposition result: the sale order plus
// every job card it expanded into.
type CheckoutResponse struct {
	Order    SaleOrderResponse `json:"order"`
	JobCards []JobCardResponse `json:"job_cards"`
}

func FromCheckout(o entities.SaleOrder, cards []entities.JobCard) CheckoutResponse {
	return CheckoutResponse{
		Order:    FromSaleOrder(o),
		JobCards: FromJobCards(cards),
	}
}
