package catalog

import (
	"errors"
	"fmt"

	"furnicraft/internal/domain/entities"
)

// Validation error classes.
//
//   - ErrInvalidConfiguration: user-correctable; surfaced verbatim to
//     the configurator.
//   - ErrUnknownReference: the client referenced catalog data that no
//     longer exists (stale cache); the caller should force-refresh.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownReference     = errors.New("unknown reference")
)

// ValidateConfiguration is the single narrowing boundary between the
// untrusted external configuration shape and the internal typed one.
// Downstream calculators rely on its output and never re-validate.
//
// knownFabric answers whether a fabric code exists in the Fabric
// Ledger; the caller supplies it so this stays side-effect free.
func ValidateConfiguration(profile Profile, cfg entities.Configuration, knownFabric func(code string) bool) (entities.Configuration, error) {
	if cfg.Category != profile.Category {
		return entities.Configuration{}, fmt.Errorf("%w: configuration category %q does not match %q", ErrInvalidConfiguration, cfg.Category, profile.Category)
	}

	if cfg.Shape == "" {
		cfg.Shape = "straight"
	}
	if !profile.SupportsShape(cfg.Shape) {
		return entities.Configuration{}, fmt.Errorf("%w: shape %q is not available for %s", ErrInvalidConfiguration, cfg.Shape, profile.Category)
	}

	// Single-piece configurators send no section list; normalize to
	// one unit of the category's base section.
	if len(cfg.Sections) == 0 {
		cfg.Sections = []entities.SectionSelection{{Type: profile.BaseSectionType, Quantity: 1}}
	}

	sections := make([]entities.SectionSelection, 0, len(cfg.Sections))
	for _, s := range cfg.Sections {
		spec, ok := profile.Sections[s.Type]
		if !ok {
			return entities.Configuration{}, fmt.Errorf("%w: section type %q is not in the %s vocabulary", ErrInvalidConfiguration, s.Type, profile.Category)
		}
		if s.Quantity < 0 {
			return entities.Configuration{}, fmt.Errorf("%w: section %q has negative quantity %d", ErrInvalidConfiguration, s.Type, s.Quantity)
		}
		if s.SeaterSize < 0 {
			return entities.Configuration{}, fmt.Errorf("%w: section %q has negative seater size %d", ErrInvalidConfiguration, s.Type, s.SeaterSize)
		}
		if s.SeaterSize == 0 {
			s.SeaterSize = spec.Seats
		}
		if s.Quantity == 0 {
			continue
		}
		sections = append(sections, s)
	}
	if len(sections) == 0 {
		return entities.Configuration{}, fmt.Errorf("%w: configuration has no production units", ErrInvalidConfiguration)
	}
	cfg.Sections = sections

	if cfg.Fabric.CladdingPlan == "" {
		cfg.Fabric.CladdingPlan = entities.CladdingSingleColour
	}
	switch cfg.Fabric.CladdingPlan {
	case entities.CladdingSingleColour, entities.CladdingDualColour, entities.CladdingPerSection:
	default:
		return entities.Configuration{}, fmt.Errorf("%w: unknown cladding plan %q", ErrInvalidConfiguration, cfg.Fabric.CladdingPlan)
	}
	if len(cfg.Fabric.Codes) == 0 {
		return entities.Configuration{}, fmt.Errorf("%w: no fabric code assigned", ErrInvalidConfiguration)
	}
	// A single-colour plan uses exactly one role; keep the primary
	// assignment and drop any leftovers from a previous plan choice.
	if cfg.Fabric.CladdingPlan == entities.CladdingSingleColour && len(cfg.Fabric.Codes) > 1 {
		primary, ok := cfg.Fabric.Codes[entities.FabricRolePrimary]
		if !ok {
			return entities.Configuration{}, fmt.Errorf("%w: single-colour plan needs a primary fabric", ErrInvalidConfiguration)
		}
		cfg.Fabric.Codes = map[entities.FabricRole]string{entities.FabricRolePrimary: primary}
	}
	for role, code := range cfg.Fabric.Codes {
		if code == "" {
			return entities.Configuration{}, fmt.Errorf("%w: empty fabric code for role %q", ErrInvalidConfiguration, role)
		}
		if knownFabric != nil && !knownFabric(code) {
			return entities.Configuration{}, fmt.Errorf("%w: fabric %q not found in ledger", ErrUnknownReference, code)
		}
	}

	if cfg.Dimensions.DepthCM < 0 || cfg.Dimensions.WidthCM < 0 || cfg.Dimensions.HeightCM < 0 {
		return entities.Configuration{}, fmt.Errorf("%w: negative dimension", ErrInvalidConfiguration)
	}

	a := cfg.Accessories
	if a.Consoles < 0 || a.DummySeats < 0 || a.Headrests < 0 {
		return entities.Configuration{}, fmt.Errorf("%w: negative accessory count", ErrInvalidConfiguration)
	}
	if a.Consoles > 0 && !profile.SupportsConsoles {
		return entities.Configuration{}, fmt.Errorf("%w: consoles are not available for %s", ErrInvalidConfiguration, profile.Category)
	}
	if a.DummySeats > 0 && !profile.SupportsDummySeats {
		return entities.Configuration{}, fmt.Errorf("%w: dummy seats are not available for %s", ErrInvalidConfiguration, profile.Category)
	}
	if a.Headrests > 0 && !profile.SupportsHeadrests {
		return entities.Configuration{}, fmt.Errorf("%w: headrests are not available for %s", ErrInvalidConfiguration, profile.Category)
	}
	if a.Motorized && !profile.SupportsMotorization {
		return entities.Configuration{}, fmt.Errorf("%w: motorization is not available for %s", ErrInvalidConfiguration, profile.Category)
	}

	if cfg.FoamGrade == "" {
		cfg.FoamGrade = profile.DefaultFoamGrade
	}
	if cfg.FrameMaterial == "" {
		cfg.FrameMaterial = profile.DefaultFrameMaterial
	}

	return cfg, nil
}
