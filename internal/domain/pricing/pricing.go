// Package pricing turns a product's base commercial data plus a
// validated customer configuration into an itemized price breakdown.
//
// Calculate is pure and deterministic: identical inputs yield
// bit-identical breakdowns, so it can run on every configurator edit
// without accumulating state. All arithmetic is exact decimal;
// rounding happens once, at the presentation boundary.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"furnicraft/internal/domain/catalog"
	"furnicraft/internal/domain/entities"
	"furnicraft/internal/domain/fabricplan"
)

var (
	// ErrProductNotFound: the base record is missing or inactive.
	ErrProductNotFound = errors.New("product not found")
	// ErrCalculation: a required rate or allowance is absent from the
	// category's admin settings. Never silently defaulted.
	ErrCalculation = errors.New("calculation error")
)

var hundred = decimal.NewFromInt(100)

// Input carries everything Calculate needs, pre-loaded by the caller.
// FabricRates must contain every code the configuration references.
type Input struct {
	Profile       catalog.Profile
	Base          entities.ProductBaseRecord
	Settings      entities.CategorySettings
	FabricRates   map[string]entities.FabricRate
	Configuration entities.Configuration
}

// Calculate prices a validated configuration.
func Calculate(in Input) (entities.PriceBreakdown, error) {
	if in.Base.ProductID == "" || !in.Base.Active {
		return entities.PriceBreakdown{}, fmt.Errorf("%w: %s/%s", ErrProductNotFound, in.Configuration.Category, in.Configuration.ProductID)
	}

	base := in.Base.EffectiveNetPrice()

	sections, sectionsTotal, err := sectionComponents(in.Settings, in.Configuration)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}

	fabricUpgrade, err := fabricUpgradeComponent(in)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}

	accessory, err := accessoryComponent(in.Settings.Accessories, in.Configuration.Accessories)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}

	dimension := dimensionComponent(in.Settings.Dimensions, in.Configuration.Dimensions)

	subtotal := base.Add(sectionsTotal).Add(fabricUpgrade).Add(accessory).Add(dimension)
	discount := discountComponent(in.Base, subtotal)

	breakdown := entities.PriceBreakdown{
		BaseComponent:             base,
		SectionComponents:         sections,
		FabricUpgradeComponent:    fabricUpgrade,
		AccessoryComponent:        accessory,
		DimensionUpgradeComponent: dimension,
		DiscountComponent:         discount,
		StrikePrice:               in.Base.StrikePrice,
	}

	total := subtotal.Add(discount)
	if total.IsNegative() {
		// A negative total indicates a data error in admin settings;
		// floor it and surface a non-fatal warning.
		total = decimal.Zero
		breakdown.Warnings = append(breakdown.Warnings, entities.WarningPricingAnomaly)
	}
	breakdown.Total = total
	return breakdown, nil
}

// sectionComponents prices every configured unit. The very first unit
// of the configuration is covered by the base component; the first
// unit of every other section type is priced at that type's first-unit
// rate and all remaining units at the additional-unit rate. Additional
// units are cheaper than (or equal to) the first by category contract.
func sectionComponents(settings entities.CategorySettings, cfg entities.Configuration) ([]entities.SectionComponent, decimal.Decimal, error) {
	components := make([]entities.SectionComponent, 0, len(cfg.Sections))
	total := decimal.Zero
	baseUnitTaken := false

	for _, sel := range cfg.Sections {
		rate, ok := settings.SectionRates[sel.Type]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: no section rate for %q in %s settings", ErrCalculation, sel.Type, cfg.Category)
		}
		if rate.FirstUnit.IsNegative() || rate.AdditionalUnit.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("%w: negative section rate for %q", ErrCalculation, sel.Type)
		}

		sc := entities.SectionComponent{
			SectionType:      sel.Type,
			Units:            sel.Quantity,
			FirstUnitAmount:  decimal.Zero,
			AdditionalAmount: decimal.Zero,
		}
		units := sel.Quantity
		if units > 0 && !baseUnitTaken {
			// Covered by the base component.
			baseUnitTaken = true
			units--
		} else if units > 0 {
			sc.FirstUnitAmount = rate.FirstUnit
			units--
		}
		if units > 0 {
			sc.AdditionalAmount = rate.AdditionalUnit.Mul(decimal.NewFromInt(int64(units)))
		}
		sc.Amount = sc.FirstUnitAmount.Add(sc.AdditionalAmount)
		total = total.Add(sc.Amount)
		components = append(components, sc)
	}
	return components, total, nil
}

// fabricUpgradeComponent charges each fabric role's upgrade surcharge
// in proportion to the meters that role actually consumes.
func fabricUpgradeComponent(in Input) (decimal.Decimal, error) {
	plan, err := fabricplan.Plan(in.Profile, in.Settings, in.Configuration)
	if err != nil {
		return decimal.Zero, err
	}

	roles := int64(len(plan.FabricCodes))
	if roles == 0 {
		return decimal.Zero, fmt.Errorf("%w: configuration carries no fabric codes", ErrCalculation)
	}
	metersPerRole := plan.TotalMeters.Div(decimal.NewFromInt(roles))

	component := decimal.Zero
	for role, code := range plan.FabricCodes {
		rate, ok := in.FabricRates[code]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: no fabric rate loaded for %q (role %s)", ErrCalculation, code, role)
		}
		component = component.Add(rate.UpgradePerMeter.Mul(metersPerRole))
	}
	return component, nil
}

func accessoryComponent(rates entities.AccessoryRates, sel entities.AccessorySelection) (decimal.Decimal, error) {
	component := decimal.Zero
	if sel.Consoles > 0 {
		if !rates.ConsoleCost.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: console rate absent", ErrCalculation)
		}
		component = component.Add(rates.ConsoleCost.Mul(decimal.NewFromInt(int64(sel.Consoles))))
	}
	if sel.DummySeats > 0 {
		if !rates.DummySeatCost.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: dummy seat rate absent", ErrCalculation)
		}
		component = component.Add(rates.DummySeatCost.Mul(decimal.NewFromInt(int64(sel.DummySeats))))
	}
	if sel.Headrests > 0 {
		if !rates.HeadrestCost.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: headrest rate absent", ErrCalculation)
		}
		component = component.Add(rates.HeadrestCost.Mul(decimal.NewFromInt(int64(sel.Headrests))))
	}
	if sel.Motorized {
		if !rates.MotorizationCost.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: motorization rate absent", ErrCalculation)
		}
		component = component.Add(rates.MotorizationCost)
	}
	return component, nil
}

// dimensionComponent applies per-cm surcharges only beyond the
// included envelope; axes within it are never charged. A zero
// requested axis means "default size".
func dimensionComponent(rates entities.DimensionRates, dim entities.DimensionSelection) decimal.Decimal {
	component := decimal.Zero
	component = component.Add(axisSurcharge(dim.DepthCM, rates.IncludedDepthCM, rates.DepthPerCM))
	component = component.Add(axisSurcharge(dim.WidthCM, rates.IncludedWidthCM, rates.WidthPerCM))
	component = component.Add(axisSurcharge(dim.HeightCM, rates.IncludedHeightCM, rates.HeightPerCM))
	return component
}

func axisSurcharge(requested, included int, perCM decimal.Decimal) decimal.Decimal {
	if requested <= 0 || requested <= included {
		return decimal.Zero
	}
	return perCM.Mul(decimal.NewFromInt(int64(requested - included)))
}

// discountComponent returns the (negative) discount. When both a
// percentage and an absolute discount are configured, the percentage
// wins; they are never combined.
func discountComponent(base entities.ProductBaseRecord, subtotal decimal.Decimal) decimal.Decimal {
	if base.DiscountPercent.IsPositive() {
		return subtotal.Mul(base.DiscountPercent).Div(hundred).Neg()
	}
	if base.DiscountAbsolute.IsPositive() {
		return base.DiscountAbsolute.Neg()
	}
	return decimal.Zero
}
