// Package techspec flattens a configuration into the technical
// specification record the factory floor and QC read. It deliberately
// contains no pricing or fabric logic: the customer vocabulary and the
// factory vocabulary diverge over time, and this is the seam between
// them.
package techspec

import (
	"furnicraft/internal/domain/catalog"
	"furnicraft/internal/domain/entities"
)

// Generate builds the spec for one production unit of a configuration.
// Headrests and motorization describe the whole line item; seat
// sections carry them, non-seat sections (consoles, corners without
// seats) do not get motorization.
func Generate(profile catalog.Profile, cfg entities.Configuration, sectionType string, seats int) entities.TechnicalSpecification {
	spec := entities.TechnicalSpecification{
		ProductType:   profile.ProductType,
		SectionType:   sectionType,
		Shape:         cfg.Shape,
		Seats:         seats,
		FoamGrade:     cfg.FoamGrade,
		FrameMaterial: cfg.FrameMaterial,
		Dimensions:    cfg.Dimensions,
	}

	if sec, ok := profile.Sections[sectionType]; ok && sec.Class == catalog.ClassSeat {
		spec.Headrests = cfg.Accessories.Headrests
		spec.Motorized = cfg.Accessories.Motorized && profile.SupportsMotorization
	}
	return spec
}
