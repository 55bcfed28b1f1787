package entities

import "time"

// JobCardStatus tracks one production unit across the factory floor.
// Status is externally mutable once the card exists; everything else
// on the card is a decomposition-time snapshot.
type JobCardStatus string

const (
	JobCardStatusCreated            JobCardStatus = "created"
	JobCardStatusReadyForProduction JobCardStatus = "ready_for_production"
	JobCardStatusInProduction       JobCardStatus = "in_production"
	JobCardStatusQCPending          JobCardStatus = "qc_pending"
	JobCardStatusQCDone             JobCardStatus = "qc_done"
	JobCardStatusDone               JobCardStatus = "done"
	JobCardStatusOnHold             JobCardStatus = "on_hold"
)

// JobCardPriority orders cards on the floor.
type JobCardPriority string

const (
	PriorityNormal JobCardPriority = "normal"
	PriorityHigh   JobCardPriority = "high"
	PriorityRush   JobCardPriority = "rush"
)

// TechnicalSpecification is the flattened, factory-facing record
// attached to every job card. It speaks the factory vocabulary, not
// the configurator's, so admin renames of customer-facing options
// never require re-deriving historic cards.
type TechnicalSpecification struct {
	ProductType   string             `json:"product_type"`
	SectionType   string             `json:"section_type"`
	Shape         string             `json:"shape"`
	Seats         int                `json:"seats"`
	FoamGrade     string             `json:"foam_grade"`
	FrameMaterial string             `json:"frame_material"`
	Headrests     int                `json:"headrests"`
	Motorized     bool               `json:"motorized"`
	Dimensions    DimensionSelection `json:"dimensions"`
}

// JobCard is the work order for one physical production unit. Created
// during order decomposition, never deleted, only status-transitioned.
//
// Storage model (DynamoDB):
//   - PK: job_card_number
//   - GSI1 (sale_order_number-index): sale_order_number
//
// Invariant: the fabric plans of all cards under one line item sum
// exactly to the fabric plan computed for that line item at checkout.
type JobCard struct {
	JobCardNumber   string                 `json:"job_card_number"`
	SaleOrderNumber string                 `json:"sale_order_number"`
	LineItemID      string                 `json:"line_item_id"`
	Category        ProductCategory        `json:"category"`
	SectionType     string                 `json:"section_type"`
	UnitIndex       int                    `json:"unit_index"`
	Configuration   Configuration          `json:"configuration"`
	FabricPlan      FabricPlan             `json:"fabric_plan"`
	Specification   TechnicalSpecification `json:"specification"`
	// Settings snapshot taken at decomposition time; historic cards
	// stay reproducible after admins edit the allowance schedule.
	AllowanceSnapshot CategorySettings `json:"allowance_snapshot"`
	Status            JobCardStatus    `json:"status"`
	Priority          JobCardPriority  `json:"priority"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
