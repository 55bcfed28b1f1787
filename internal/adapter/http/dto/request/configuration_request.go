package request

import (
	"strings"

	"furnicraft/internal/domain/entities"
)

type SectionSelectionRequest struct {
	Type       string `json:"type" binding:"required"`
	SeaterSize int    `json:"seater_size"`
	Quantity   int    `json:"quantity"`
}

type FabricSelectionRequest struct {
	CladdingPlan string            `json:"cladding_plan"`
	Codes        map[string]string `json:"codes"`
}

type DimensionSelectionRequest struct {
	DepthCM  int `json:"depth_cm"`
	WidthCM  int `json:"width_cm"`
	HeightCM int `json:"height_cm"`
}

type AccessorySelectionRequest struct {
	Consoles   int  `json:"consoles"`
	DummySeats int  `json:"dummy_seats"`
	Headrests  int  `json:"headrests"`
	Motorized  bool `json:"motorized"`
}

// ConfigurationRequest is the configurator payload shared by the quote
// and add-to-cart endpoints. It is translated verbatim into the domain
// configuration; all narrowing and defaulting happens in validation,
// not here.
type ConfigurationRequest struct {
	ProductID     string                    `json:"product_id" binding:"required"`
	Category      string                    `json:"category" binding:"required"`
	Shape         string                    `json:"shape"`
	Sections      []SectionSelectionRequest `json:"sections"`
	Fabric        FabricSelectionRequest    `json:"fabric"`
	Dimensions    DimensionSelectionRequest `json:"dimensions"`
	Accessories   AccessorySelectionRequest `json:"accessories"`
	FoamGrade     string                    `json:"foam_grade"`
	FrameMaterial string                    `json:"frame_material"`
}

func (r ConfigurationRequest) ToEntity() entities.Configuration {
	sections := make([]entities.SectionSelection, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, entities.SectionSelection{
			Type:       strings.TrimSpace(s.Type),
			SeaterSize: s.SeaterSize,
			Quantity:   s.Quantity,
		})
	}

	codes := make(map[entities.FabricRole]string, len(r.Fabric.Codes))
	for role, code := range r.Fabric.Codes {
		codes[entities.FabricRole(strings.TrimSpace(role))] = strings.TrimSpace(code)
	}

	return entities.Configuration{
		ProductID: strings.TrimSpace(r.ProductID),
		Category:  entities.ProductCategory(strings.TrimSpace(r.Category)),
		Shape:     strings.TrimSpace(r.Shape),
		Sections:  sections,
		Fabric: entities.FabricSelection{
			CladdingPlan: entities.CladdingPlan(strings.TrimSpace(r.Fabric.CladdingPlan)),
			Codes:        codes,
		},
		Dimensions: entities.DimensionSelection{
			DepthCM:  r.Dimensions.DepthCM,
			WidthCM:  r.Dimensions.WidthCM,
			HeightCM: r.Dimensions.HeightCM,
		},
		Accessories: entities.AccessorySelection{
			Consoles:   r.Accessories.Consoles,
			DummySeats: r.Accessories.DummySeats,
			Headrests:  r.Accessories.Headrests,
			Motorized:  r.Accessories.Motorized,
		},
		FoamGrade:     strings.TrimSpace(r.FoamGrade),
		FrameMaterial: strings.TrimSpace(r.FrameMaterial),
	}
}

// QuoteRequest wraps a configuration with the configurator session's
// generation counter. The server never interprets the counter; it is
// echoed back so the client can discard out-of-order responses.
type QuoteRequest struct {
	Generation    int64                `json:"generation"`
	Configuration ConfigurationRequest `json:"configuration" binding:"required"`
}
