package entities

import "github.com/shopspring/decimal"

// Warning codes surfaced on a PriceBreakdown. Warnings are non-fatal:
// the price is still usable, but the condition points at a data
// problem in admin settings and is logged for operator attention.
const (
	WarningPricingAnomaly = "PRICING_ANOMALY"
)

// SectionComponent is the priced contribution of one section
// selection, split into first-unit and additional-unit amounts.
type SectionComponent struct {
	SectionType      string          `json:"section_type"`
	Units            int             `json:"units"`
	FirstUnitAmount  decimal.Decimal `json:"first_unit_amount"`
	AdditionalAmount decimal.Decimal `json:"additional_amount"`
	Amount           decimal.Decimal `json:"amount"`
}

// PriceBreakdown is the itemized output of the pricing calculator.
//
// Invariant: Total equals the sum of all components (Discount is
// negative). Internal arithmetic stays in exact decimal form; rounding
// is applied once at the DTO boundary.
type PriceBreakdown struct {
	BaseComponent             decimal.Decimal    `json:"base_component"`
	SectionComponents         []SectionComponent `json:"section_components"`
	FabricUpgradeComponent    decimal.Decimal    `json:"fabric_upgrade_component"`
	AccessoryComponent        decimal.Decimal    `json:"accessory_component"`
	DimensionUpgradeComponent decimal.Decimal    `json:"dimension_upgrade_component"`
	DiscountComponent         decimal.Decimal    `json:"discount_component"`
	Total                     decimal.Decimal    `json:"total"`
	StrikePrice               decimal.Decimal    `json:"strike_price"`
	Warnings                  []string           `json:"warnings,omitempty"`
}

// SectionsAmount sums all section components.
func (b PriceBreakdown) SectionsAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, sc := range b.SectionComponents {
		sum = sum.Add(sc.Amount)
	}
	return sum
}
