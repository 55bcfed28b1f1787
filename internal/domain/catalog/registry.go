package catalog

import (
	"errors"
	"fmt"

	"furnicraft/internal/domain/entities"
)

var ErrUnknownCategory = errors.New("unknown product category")

// SectionClass maps a section type onto the fabric cut-plan bucket it
// consumes meters from.
type SectionClass string

const (
	ClassSeat    SectionClass = "seat"
	ClassCorner  SectionClass = "corner"
	ClassConsole SectionClass = "console"
	ClassLounger SectionClass = "lounger"
	ClassDummy   SectionClass = "dummy"
)

// SectionSpec describes one entry of a category's section vocabulary.
type SectionSpec struct {
	Class SectionClass
	Seats int
}

// Profile is the closed, per-category contract the rest of the engine
// dispatches on: section vocabulary, shapes, accessory support and the
// factory-facing defaults.
//
// Profiles are resolved once at startup through Resolve. There is no
// per-call table-name or key-name construction anywhere downstream; an
// unsupported category fails here, loudly.
type Profile struct {
	Category entities.ProductCategory

	// ProductType is the factory vocabulary name stamped onto
	// technical specifications.
	ProductType string

	Shapes   []string
	Sections map[string]SectionSpec

	// BaseSectionType is the implied single unit for categories whose
	// configurator exposes no section list (beds, single recliners).
	BaseSectionType string

	SupportsMotorization bool
	SupportsConsoles     bool
	SupportsHeadrests    bool
	SupportsDummySeats   bool

	DefaultFoamGrade     string
	DefaultFrameMaterial string
}

// SupportsShape reports whether the shape belongs to the profile.
func (p Profile) SupportsShape(shape string) bool {
	for _, s := range p.Shapes {
		if s == shape {
			return true
		}
	}
	return false
}

var registry = map[entities.ProductCategory]Profile{
	entities.CategorySofa: {
		Category:    entities.CategorySofa,
		ProductType: "modular_sofa",
		Shapes:      []string{"straight", "l_shape", "u_shape"},
		Sections: map[string]SectionSpec{
			"straight_1_seater": {Class: ClassSeat, Seats: 1},
			"straight_2_seater": {Class: ClassSeat, Seats: 2},
			"straight_3_seater": {Class: ClassSeat, Seats: 3},
			"straight_4_seater": {Class: ClassSeat, Seats: 4},
			"corner":            {Class: ClassCorner, Seats: 1},
			"console":           {Class: ClassConsole},
			"lounger":           {Class: ClassLounger, Seats: 1},
			"dummy_seat":        {Class: ClassDummy, Seats: 1},
		},
		BaseSectionType:      "straight_3_seater",
		SupportsMotorization: true,
		SupportsConsoles:     true,
		SupportsHeadrests:    true,
		SupportsDummySeats:   true,
		DefaultFoamGrade:     "HR-32",
		DefaultFrameMaterial: "kiln_dried_hardwood",
	},
	entities.CategoryBed: {
		Category:    entities.CategoryBed,
		ProductType: "platform_bed",
		Shapes:      []string{"straight"},
		Sections: map[string]SectionSpec{
			"platform": {Class: ClassSeat, Seats: 1},
		},
		BaseSectionType:      "platform",
		SupportsHeadrests:    true,
		DefaultFoamGrade:     "HD-28",
		DefaultFrameMaterial: "engineered_ply",
	},
	entities.CategoryRecliner: {
		Category:    entities.CategoryRecliner,
		ProductType: "recliner_unit",
		Shapes:      []string{"straight"},
		Sections: map[string]SectionSpec{
			"recliner_seat": {Class: ClassSeat, Seats: 1},
			"console":       {Class: ClassConsole},
			"dummy_seat":    {Class: ClassDummy, Seats: 1},
		},
		BaseSectionType:      "recliner_seat",
		SupportsMotorization: true,
		SupportsConsoles:     true,
		SupportsHeadrests:    true,
		SupportsDummySeats:   true,
		DefaultFoamGrade:     "HR-40",
		DefaultFrameMaterial: "recliner_mechanism_frame",
	},
	entities.CategoryCinemaChair: {
		Category:    entities.CategoryCinemaChair,
		ProductType: "cinema_row",
		Shapes:      []string{"straight"},
		Sections: map[string]SectionSpec{
			"cinema_seat": {Class: ClassSeat, Seats: 1},
			"console":     {Class: ClassConsole},
			"dummy_seat":  {Class: ClassDummy, Seats: 1},
		},
		BaseSectionType:      "cinema_seat",
		SupportsMotorization: true,
		SupportsConsoles:     true,
		SupportsHeadrests:    true,
		SupportsDummySeats:   true,
		DefaultFoamGrade:     "HR-40",
		DefaultFrameMaterial: "recliner_mechanism_frame",
	},
	entities.CategoryBench: {
		Category:    entities.CategoryBench,
		ProductType: "bench_unit",
		Shapes:      []string{"straight"},
		Sections: map[string]SectionSpec{
			"bench_2_seater": {Class: ClassSeat, Seats: 2},
			"bench_3_seater": {Class: ClassSeat, Seats: 3},
		},
		BaseSectionType:      "bench_2_seater",
		DefaultFoamGrade:     "HD-28",
		DefaultFrameMaterial: "solid_sheesham",
	},
}

// Resolve returns the profile of a category.
func Resolve(category entities.ProductCategory) (Profile, error) {
	p, ok := registry[category]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return p, nil
}

// Categories lists the registered categories; used by startup checks
// and tests.
func Categories() []entities.ProductCategory {
	out := make([]entities.ProductCategory, 0, len(registry))
	for c := range registry {
		out = append(out, c)
	}
	return out
}
