// Package fabricplan computes the fabric meter requirements of a
// configuration from the category's allowance table.
//
// The calculator is pure: allowances and configuration in, plan out.
// A section type without a usable allowance entry fails loudly — a
// silently-dropped fabric requirement becomes a physical shortage on
// the factory floor.
package fabricplan

import (
	"fmt"

	"github.com/shopspring/decimal"

	"furnicraft/internal/domain/catalog"
	"furnicraft/internal/domain/entities"
)

// UnallocatedSectionError reports a section type whose fabric
// allowance is missing from the category settings.
type UnallocatedSectionError struct {
	SectionType string
}

func (e *UnallocatedSectionError) Error() string {
	return fmt.Sprintf("no fabric allowance for section type %q", e.SectionType)
}

// Unit is one physical production unit of a configuration together
// with the fabric plan of that unit alone. The decomposer turns each
// Unit into a job card.
type Unit struct {
	SectionType string
	Class       catalog.SectionClass
	Seats       int
	// Index is the unit's ordinal within its section type; unit 0 of a
	// seat type consumes the "single" allowance, later units the
	// "additional" one (mirrors the pricing asymmetry).
	Index int
	Plan  entities.FabricPlan
}

// Plan computes the full fabric plan of a configuration. It is defined
// as the exact sum of the per-unit plans, so the reconciliation
// invariant between a line item and its job cards holds by
// construction.
func Plan(profile catalog.Profile, settings entities.CategorySettings, cfg entities.Configuration) (entities.FabricPlan, error) {
	units, err := PlanUnits(profile, settings, cfg)
	if err != nil {
		return entities.FabricPlan{}, err
	}
	total := entities.FabricPlan{
		StructureMeters: decimal.Zero,
		ArmrestMeters:   decimal.Zero,
		ConsoleMeters:   decimal.Zero,
		CornerMeters:    decimal.Zero,
		LoungerMeters:   decimal.Zero,
		TotalMeters:     decimal.Zero,
		FabricCodes:     cfg.Fabric.Codes,
	}
	for _, u := range units {
		total = total.Add(u.Plan)
	}
	total.FabricCodes = cfg.Fabric.Codes
	return total, nil
}

// PlanUnits expands the configuration into production units and
// computes each unit's own fabric plan.
//
// Dual-colour and per-section cladding plans multiply every allowance
// by the number of distinct fabric roles assigned; a single-colour
// plan is one allowance set regardless of section count. Flat
// allowances that exist once per configuration (armrest pair,
// accessory consoles, dummy seats) ride on the first unit.
func PlanUnits(profile catalog.Profile, settings entities.CategorySettings, cfg entities.Configuration) ([]Unit, error) {
	mult := decimal.NewFromInt(int64(cfg.DistinctFabricRoles()))
	al := settings.Allowances

	var units []Unit
	for _, sel := range cfg.Sections {
		spec, ok := profile.Sections[sel.Type]
		if !ok {
			return nil, &UnallocatedSectionError{SectionType: sel.Type}
		}
		for i := 0; i < sel.Quantity; i++ {
			ordinal := i
			plan, err := unitPlan(al, sel, spec, ordinal, mult)
			if err != nil {
				return nil, err
			}
			plan.FabricCodes = cfg.Fabric.Codes
			units = append(units, Unit{
				SectionType: sel.Type,
				Class:       spec.Class,
				Seats:       sel.SeaterSize,
				Index:       ordinal,
				Plan:        plan,
			})
		}
	}
	if len(units) == 0 {
		return nil, &UnallocatedSectionError{SectionType: "(none)"}
	}

	// Configuration-level extras attach to the first unit.
	extra := entities.FabricPlan{
		StructureMeters: decimal.Zero,
		ArmrestMeters:   al.ArmrestMeters.Mul(mult),
		ConsoleMeters:   decimal.Zero,
		CornerMeters:    decimal.Zero,
		LoungerMeters:   decimal.Zero,
	}
	if cfg.Accessories.Consoles > 0 {
		if !al.ConsoleMeters.IsPositive() {
			return nil, &UnallocatedSectionError{SectionType: "console"}
		}
		extra.ConsoleMeters = al.ConsoleMeters.Mul(decimal.NewFromInt(int64(cfg.Accessories.Consoles))).Mul(mult)
	}
	if cfg.Accessories.DummySeats > 0 {
		if !al.AdditionalSeatMeters.IsPositive() {
			return nil, &UnallocatedSectionError{SectionType: "dummy_seat"}
		}
		extra.StructureMeters = al.AdditionalSeatMeters.Mul(decimal.NewFromInt(int64(cfg.Accessories.DummySeats))).Mul(mult)
	}
	extra.TotalMeters = extra.StructureMeters.Add(extra.ArmrestMeters).Add(extra.ConsoleMeters)
	units[0].Plan = units[0].Plan.Add(extra)
	units[0].Plan.FabricCodes = cfg.Fabric.Codes

	return units, nil
}

func unitPlan(al entities.FabricAllowances, sel entities.SectionSelection, spec catalog.SectionSpec, ordinal int, mult decimal.Decimal) (entities.FabricPlan, error) {
	p := entities.FabricPlan{
		StructureMeters: decimal.Zero,
		ArmrestMeters:   decimal.Zero,
		ConsoleMeters:   decimal.Zero,
		CornerMeters:    decimal.Zero,
		LoungerMeters:   decimal.Zero,
	}

	switch spec.Class {
	case catalog.ClassSeat:
		if !al.SingleSeatMeters.IsPositive() || !al.AdditionalSeatMeters.IsPositive() {
			return p, &UnallocatedSectionError{SectionType: sel.Type}
		}
		seats := sel.SeaterSize
		if seats < 1 {
			seats = 1
		}
		if ordinal == 0 {
			// First unit of the type: first seat at the single
			// allowance, remaining seats at the additional one.
			p.StructureMeters = al.SingleSeatMeters.
				Add(al.AdditionalSeatMeters.Mul(decimal.NewFromInt(int64(seats - 1))))
		} else {
			p.StructureMeters = al.AdditionalSeatMeters.Mul(decimal.NewFromInt(int64(seats)))
		}
	case catalog.ClassDummy:
		if !al.AdditionalSeatMeters.IsPositive() {
			return p, &UnallocatedSectionError{SectionType: sel.Type}
		}
		p.StructureMeters = al.AdditionalSeatMeters
	case catalog.ClassCorner:
		if !al.CornerMeters.IsPositive() {
			return p, &UnallocatedSectionError{SectionType: sel.Type}
		}
		p.CornerMeters = al.CornerMeters
	case catalog.ClassConsole:
		if !al.ConsoleMeters.IsPositive() {
			return p, &UnallocatedSectionError{SectionType: sel.Type}
		}
		p.ConsoleMeters = al.ConsoleMeters
	case catalog.ClassLounger:
		if !al.LoungerMeters.IsPositive() {
			return p, &UnallocatedSectionError{SectionType: sel.Type}
		}
		p.LoungerMeters = al.LoungerMeters
	default:
		return p, &UnallocatedSectionError{SectionType: sel.Type}
	}

	p.StructureMeters = p.StructureMeters.Mul(mult)
	p.CornerMeters = p.CornerMeters.Mul(mult)
	p.ConsoleMeters = p.ConsoleMeters.Mul(mult)
	p.LoungerMeters = p.LoungerMeters.Mul(mult)
	p.TotalMeters = p.StructureMeters.
		Add(p.ArmrestMeters).
		Add(p.ConsoleMeters).
		Add(p.CornerMeters).
		Add(p.LoungerMeters)
	return p, nil
}
