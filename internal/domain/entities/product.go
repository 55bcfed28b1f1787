package entities

import "github.com/shopspring/decimal"

// ProductBaseRecord is the per-product commercial row from the Catalog
// Store.
//
// Storage model (DynamoDB):
//   - PK: category
//   - SK: product_id
//
// Monetary representation: all money fields are exact decimals;
// rounding happens once, at the presentation boundary.
type ProductBaseRecord struct {
	ProductID                 string          `json:"product_id"`
	Category                  ProductCategory `json:"category"`
	Name                      string          `json:"name"`
	Active                    bool            `json:"active"`
	BOMCost                   decimal.Decimal `json:"bom_cost"`
	MarkupPercent             decimal.Decimal `json:"markup_percent"`
	WastageDeliveryGSTPercent decimal.Decimal `json:"wastage_delivery_gst_percent"`
	DiscountPercent           decimal.Decimal `json:"discount_percent"`
	DiscountAbsolute          decimal.Decimal `json:"discount_absolute"`
	NetPrice                  decimal.Decimal `json:"net_price"`
	StrikePrice               decimal.Decimal `json:"strike_price"`
}

// EffectiveNetPrice returns NetPrice when the catalog row carries one,
// otherwise derives it from the BOM chain:
//
//	bomCost * (1 + markup%) * (1 + wastageDeliveryGst%) - discountAbsolute
func (p ProductBaseRecord) EffectiveNetPrice() decimal.Decimal {
	if p.NetPrice.IsPositive() {
		return p.NetPrice
	}
	hundred := decimal.NewFromInt(100)
	net := p.BOMCost.
		Mul(decimal.NewFromInt(1).Add(p.MarkupPercent.Div(hundred))).
		Mul(decimal.NewFromInt(1).Add(p.WastageDeliveryGSTPercent.Div(hundred))).
		Sub(p.DiscountAbsolute)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// FabricRate is one Fabric Ledger row: the base cost of a fabric and
// the per-meter surcharge charged when a customer upgrades to it.
type FabricRate struct {
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Active          bool            `json:"active"`
	CostPerMeter    decimal.Decimal `json:"cost_per_meter"`
	UpgradePerMeter decimal.Decimal `json:"upgrade_per_meter"`
}

// SectionRate prices the units of one section type. The first unit of
// a type and every additional unit of the same type are priced
// separately; additional units are never more expensive than the
// first (category-level contract).
type SectionRate struct {
	FirstUnit      decimal.Decimal `json:"first_unit"`
	AdditionalUnit decimal.Decimal `json:"additional_unit"`
}

// FabricAllowances is the category's meter-allowance table used by the
// fabric plan calculator.
type FabricAllowances struct {
	SingleSeatMeters     decimal.Decimal `json:"single_seat_meters"`
	AdditionalSeatMeters decimal.Decimal `json:"additional_seat_meters"`
	ArmrestMeters        decimal.Decimal `json:"armrest_meters"`
	ConsoleMeters        decimal.Decimal `json:"console_meters"`
	CornerMeters         decimal.Decimal `json:"corner_meters"`
	LoungerMeters        decimal.Decimal `json:"lounger_meters"`
}

// AccessoryRates holds per-unit accessory costs for a category.
type AccessoryRates struct {
	ConsoleCost      decimal.Decimal `json:"console_cost"`
	DummySeatCost    decimal.Decimal `json:"dummy_seat_cost"`
	HeadrestCost     decimal.Decimal `json:"headrest_cost"`
	MotorizationCost decimal.Decimal `json:"motorization_cost"`
}

// DimensionRates describes the included envelope and the per-cm
// surcharge applied beyond it, per axis.
type DimensionRates struct {
	IncludedDepthCM  int             `json:"included_depth_cm"`
	IncludedWidthCM  int             `json:"included_width_cm"`
	IncludedHeightCM int             `json:"included_height_cm"`
	DepthPerCM       decimal.Decimal `json:"depth_per_cm"`
	WidthPerCM       decimal.Decimal `json:"width_per_cm"`
	HeightPerCM      decimal.Decimal `json:"height_per_cm"`
}

// CategorySettings is the admin-tunable rate table of one category,
// stored in the Catalog Store under (category, "pricing_profile").
//
// Job cards snapshot these settings at decomposition time so that
// later admin edits never change historic cards.
type CategorySettings struct {
	Category     ProductCategory        `json:"category"`
	SectionRates map[string]SectionRate `json:"section_rates"`
	Allowances   FabricAllowances       `json:"allowances"`
	Accessories  AccessoryRates         `json:"accessories"`
	Dimensions   DimensionRates         `json:"dimensions"`
}
