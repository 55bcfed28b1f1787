package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DraftOrderStatus is the two-state cart lifecycle. A draft belongs to
// its customer until checkout confirms it, exactly once.
type DraftOrderStatus string

const (
	DraftStatusDraft     DraftOrderStatus = "draft"
	DraftStatusConfirmed DraftOrderStatus = "confirmed"
)

// DraftOrder is a saved-but-unconfirmed configuration in a customer's
// cart.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// OrderNumber starts as a draft-scoped identifier (DRF-...) and is
// atomically renamed to the confirmed sale order number at checkout.
type DraftOrder struct {
	ID              string           `json:"id"`
	OrderNumber     string           `json:"order_number"`
	CustomerID      string           `json:"customer_id"`
	ProductID       string           `json:"product_id"`
	Category        ProductCategory  `json:"category"`
	Configuration   Configuration    `json:"configuration"`
	CalculatedPrice decimal.Decimal  `json:"calculated_price"`
	Breakdown       PriceBreakdown   `json:"breakdown"`
	Status          DraftOrderStatus `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
