package techspec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"furnicraft/internal/domain/catalog"
	"furnicraft/internal/domain/entities"
)

func sofaConfig() entities.Configuration {
	return entities.Configuration{
		ProductID: "SOFA-ALTO",
		Category:  entities.CategorySofa,
		Shape:     "l_shape",
		Accessories: entities.AccessorySelection{
			Headrests: 2,
			Motorized: true,
		},
		Dimensions:    entities.DimensionSelection{DepthCM: 95, WidthCM: 220, HeightCM: 85},
		FoamGrade:     "HR-32",
		FrameMaterial: "kiln_dried_hardwood",
	}
}

func TestGenerateSeatSectionCarriesAccessories(t *testing.T) {
	profile, err := catalog.Resolve(entities.CategorySofa)
	require.NoError(t, err)

	spec := Generate(profile, sofaConfig(), "straight_3_seater", 3)

	require.Equal(t, "modular_sofa", spec.ProductType)
	require.Equal(t, "straight_3_seater", spec.SectionType)
	require.Equal(t, "l_shape", spec.Shape)
	require.Equal(t, 3, spec.Seats)
	require.Equal(t, "HR-32", spec.FoamGrade)
	require.Equal(t, "kiln_dried_hardwood", spec.FrameMaterial)
	require.Equal(t, entities.DimensionSelection{DepthCM: 95, WidthCM: 220, HeightCM: 85}, spec.Dimensions)
	require.Equal(t, 2, spec.Headrests)
	require.True(t, spec.Motorized)
}

func TestGenerateNonSeatSectionSkipsAccessories(t *testing.T) {
	profile, err := catalog.Resolve(entities.CategorySofa)
	require.NoError(t, err)

	spec := Generate(profile, sofaConfig(), "console", 0)

	require.Equal(t, "console", spec.SectionType)
	require.Zero(t, spec.Headrests)
	require.False(t, spec.Motorized)
}

func TestGenerateMotorizationGatedByProfile(t *testing.T) {
	profile, err := catalog.Resolve(entities.CategoryBench)
	require.NoError(t, err)

	cfg := sofaConfig()
	cfg.Category = entities.CategoryBench
	cfg.Shape = "straight"

	spec := Generate(profile, cfg, "bench_2_seater", 2)
	require.Equal(t, "bench_unit", spec.ProductType)
	require.False(t, spec.Motorized)
}
