package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleOrderStatus is the lifecycle of a confirmed commercial order,
// from staff review through production to delivery.
type SaleOrderStatus string

const (
	OrderStatusPendingReview        SaleOrderStatus = "pending_review"
	OrderStatusStaffEditing         SaleOrderStatus = "staff_editing"
	OrderStatusStaffApproved        SaleOrderStatus = "staff_approved"
	OrderStatusStaffPDFGenerated    SaleOrderStatus = "staff_pdf_generated"
	OrderStatusAwaitingConfirmation SaleOrderStatus = "awaiting_customer_confirmation"
	OrderStatusAwaitingOTP          SaleOrderStatus = "awaiting_customer_otp"
	OrderStatusCustomerConfirmed    SaleOrderStatus = "customer_confirmed"
	OrderStatusConfirmedByCustomer  SaleOrderStatus = "confirmed_by_customer"
	OrderStatusPaymentPending       SaleOrderStatus = "payment_pending"
	OrderStatusReadyForProduction   SaleOrderStatus = "ready_for_production"
	OrderStatusInProduction         SaleOrderStatus = "in_production"
	OrderStatusQCPending            SaleOrderStatus = "qc_pending"
	OrderStatusQCDone               SaleOrderStatus = "qc_done"
	OrderStatusReadyForDispatch     SaleOrderStatus = "ready_for_dispatch"
	OrderStatusOutForDelivery       SaleOrderStatus = "out_for_delivery"
	OrderStatusDelivered            SaleOrderStatus = "delivered"
	OrderStatusCompleted            SaleOrderStatus = "completed"
	OrderStatusCancelled            SaleOrderStatus = "cancelled"
)

// orderTransitions declares the allowed forward edges of the sale
// order state machine. Cancellation is handled separately: it is
// reachable from any pre-production state.
var orderTransitions = map[SaleOrderStatus][]SaleOrderStatus{
	OrderStatusPendingReview:        {OrderStatusStaffEditing, OrderStatusStaffApproved},
	OrderStatusStaffEditing:         {OrderStatusStaffApproved, OrderStatusStaffPDFGenerated},
	OrderStatusStaffApproved:        {OrderStatusStaffPDFGenerated, OrderStatusAwaitingConfirmation, OrderStatusAwaitingOTP},
	OrderStatusStaffPDFGenerated:    {OrderStatusAwaitingConfirmation, OrderStatusAwaitingOTP},
	OrderStatusAwaitingConfirmation: {OrderStatusCustomerConfirmed, OrderStatusConfirmedByCustomer},
	OrderStatusAwaitingOTP:          {OrderStatusCustomerConfirmed, OrderStatusConfirmedByCustomer},
	OrderStatusCustomerConfirmed:    {OrderStatusPaymentPending, OrderStatusReadyForProduction},
	OrderStatusConfirmedByCustomer:  {OrderStatusPaymentPending, OrderStatusReadyForProduction},
	OrderStatusPaymentPending:       {OrderStatusReadyForProduction},
	OrderStatusReadyForProduction:   {OrderStatusInProduction},
	OrderStatusInProduction:         {OrderStatusQCPending},
	OrderStatusQCPending:            {OrderStatusQCDone},
	OrderStatusQCDone:               {OrderStatusReadyForDispatch},
	OrderStatusReadyForDispatch:     {OrderStatusOutForDelivery},
	OrderStatusOutForDelivery:       {OrderStatusDelivered},
	OrderStatusDelivered:            {OrderStatusCompleted},
}

// preProductionStatuses are the states from which an order may still
// be cancelled.
var preProductionStatuses = map[SaleOrderStatus]bool{
	OrderStatusPendingReview:        true,
	OrderStatusStaffEditing:         true,
	OrderStatusStaffApproved:        true,
	OrderStatusStaffPDFGenerated:    true,
	OrderStatusAwaitingConfirmation: true,
	OrderStatusAwaitingOTP:          true,
	OrderStatusCustomerConfirmed:    true,
	OrderStatusConfirmedByCustomer:  true,
	OrderStatusPaymentPending:       true,
}

// CanTransition reports whether from → to is a legal sale order
// transition.
func CanTransition(from, to SaleOrderStatus) bool {
	if to == OrderStatusCancelled {
		return preProductionStatuses[from]
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsCustomerConfirmed reports whether the order sits in one of the two
// customer-confirmed states that allow release for production.
func (s SaleOrderStatus) IsCustomerConfirmed() bool {
	return s == OrderStatusCustomerConfirmed || s == OrderStatusConfirmedByCustomer
}

// IsTerminal reports whether no further transition is allowed.
func (s SaleOrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// LineItem is one priced configuration inside a sale order. It keeps
// the breakdown and fabric plan computed at checkout time, which the
// job cards of this line must reconcile against.
type LineItem struct {
	ID            string          `json:"id"`
	DraftOrderID  string          `json:"draft_order_id"`
	ProductID     string          `json:"product_id"`
	Category      ProductCategory `json:"category"`
	Configuration Configuration   `json:"configuration"`
	Breakdown     PriceBreakdown  `json:"breakdown"`
	FabricPlan    FabricPlan      `json:"fabric_plan"`
	Total         decimal.Decimal `json:"total"`
}

// SaleOrder is the confirmed commercial transaction aggregating the
// checked-out drafts of one customer session.
//
// Storage model (DynamoDB):
//   - PK: order_number
//
// Immutable after creation except for status transitions.
type SaleOrder struct {
	OrderNumber   string          `json:"order_number"`
	CustomerID    string          `json:"customer_id"`
	LineItems     []LineItem      `json:"line_items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	Status        SaleOrderStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
