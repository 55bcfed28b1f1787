package entities

// ProductCategory identifies one made-to-order product family. Every
// category carries its own pricing rules, section vocabulary and
// fabric allowance table, resolved through the catalog registry.
type ProductCategory string

const (
	CategorySofa        ProductCategory = "sofa"
	CategoryBed         ProductCategory = "bed"
	CategoryRecliner    ProductCategory = "recliner"
	CategoryCinemaChair ProductCategory = "cinema_chair"
	CategoryBench       ProductCategory = "bench"
)

// CladdingPlan is the strategy for assigning fabric codes across a
// configuration's sections.
type CladdingPlan string

const (
	CladdingSingleColour CladdingPlan = "single_colour"
	CladdingDualColour   CladdingPlan = "dual_colour"
	CladdingPerSection   CladdingPlan = "per_section"
)

// FabricRole names a slot in the cladding plan that a fabric code is
// assigned to (e.g. "primary", "secondary", or a section type for
// per-section plans).
type FabricRole string

const (
	FabricRolePrimary   FabricRole = "primary"
	FabricRoleSecondary FabricRole = "secondary"
)
