package request

import "strings"

// AddToCartRequest saves a configuration as a draft order.
type AddToCartRequest struct {
	CustomerID    string               `json:"customer_id" binding:"required"`
	Configuration ConfigurationRequest `json:"configuration" binding:"required"`
}

func (r AddToCartRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}

// CheckoutRequest confirms a set of drafts into one sale order.
//
// AttemptKey makes retries safe: the same customer, drafts and key
// always derive the same order number, so a network-level retry lands
// on the existing order instead of creating a second one.
type CheckoutRequest struct {
	CustomerID string   `json:"customer_id" binding:"required"`
	DraftIDs   []string `json:"draft_ids" binding:"required"`
	AttemptKey string   `json:"attempt_key"`
}

func (r CheckoutRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}

// StatusUpdateRequest carries a target status for an order or a job
// card. Legality of the transition is decided by the use case.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusUpdateRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
