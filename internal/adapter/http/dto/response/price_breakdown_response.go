package response

import (
	"furnicraft/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// money rounds an exact decimal to the two places shown on the wire.
// This is the single rounding point of the service; everything behind
// it stays exact.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func meters(d decimal.Decimal) float64 {
	return d.Round(3).InexactFloat64()
}

type SectionComponentResponse struct {
	SectionType      string  `json:"section_type"`
	Units            int     `json:"units"`
	FirstUnitAmount  float64 `json:"first_unit_amount"`
	AdditionalAmount float64 `json:"additional_amount"`
	Amount           float64 `json:"amount"`
}

type PriceBreakdownResponse struct {
	BaseComponent             float64                    `json:"base_component"`
	SectionComponents         []SectionComponentResponse `json:"section_components"`
	FabricUpgradeComponent    float64                    `json:"fabric_upgrade_component"`
	AccessoryComponent        float64                    `json:"accessory_component"`
	DimensionUpgradeComponent float64                    `json:"dimension_upgrade_component"`
	DiscountComponent         float64                    `json:"discount_component"`
	Total                     float64                    `json:"total"`
	StrikePrice               float64                    `json:"strike_price"`
	Warnings                  []string                   `json:"warnings,omitempty"`
}

func FromPriceBreakdown(b entities.PriceBreakdown) PriceBreakdownResponse {
	sections := make([]SectionComponentResponse, 0, len(b.SectionComponents))
	for _, sc := range b.SectionComponents {
		sections = append(sections, SectionComponentResponse{
			SectionType:      sc.SectionType,
			Units:            sc.Units,
			FirstUnitAmount:  money(sc.FirstUnitAmount),
			AdditionalAmount: money(sc.AdditionalAmount),
			Amount:           money(sc.Amount),
		})
	}
	return PriceBreakdownResponse{
		BaseComponent:             money(b.BaseComponent),
		SectionComponents:         sections,
		FabricUpgradeComponent:    money(b.FabricUpgradeComponent),
		AccessoryComponent:        money(b.AccessoryComponent),
		DimensionUpgradeComponent: money(b.DimensionUpgradeComponent),
		DiscountComponent:         money(b.DiscountComponent),
		Total:                     money(b.Total),
		StrikePrice:               money(b.StrikePrice),
		Warnings:                  b.Warnings,
	}
}

// QuoteResponse echoes the request's generation tag untouched so the
// configurator can drop answers from superseded edits.
type QuoteResponse struct {
	Generation int64                  `json:"generation"`
	Breakdown  PriceBreakdownResponse `json:"breakdown"`
}

func FromQuote(generation int64, b entities.PriceBreakdown) QuoteResponse {
	return QuoteResponse{Generation: generation, Breakdown: FromPriceBreakdown(b)}
}
