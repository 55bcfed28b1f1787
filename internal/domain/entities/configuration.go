package entities

// SectionSelection is one entry of a configuration's section list:
// a section type from the category vocabulary, the seat count of each
// unit, and how many physical units of that type the customer wants.
type SectionSelection struct {
	Type       string `json:"type"`
	SeaterSize int    `json:"seater_size"`
	Quantity   int    `json:"quantity"`
}

// FabricSelection carries the cladding plan plus the fabric code
// assigned to each role the plan uses.
type FabricSelection struct {
	CladdingPlan CladdingPlan          `json:"cladding_plan"`
	Codes        map[FabricRole]string `json:"codes"`
}

// DimensionSelection is the requested outer envelope in centimeters.
// Axes inside the category's included envelope carry no surcharge.
type DimensionSelection struct {
	DepthCM  int `json:"depth_cm"`
	WidthCM  int `json:"width_cm"`
	HeightCM int `json:"height_cm"`
}

// AccessorySelection groups the countable add-ons a category may
// support. Unsupported accessories are rejected by validation, never
// silently priced at zero.
type AccessorySelection struct {
	Consoles   int  `json:"consoles"`
	DummySeats int  `json:"dummy_seats"`
	Headrests  int  `json:"headrests"`
	Motorized  bool `json:"motorized"`
}

// Configuration is the customer's full choice set for one product.
//
// It is the internal, already-narrowed representation: everything that
// reaches the calculators has passed catalog.ValidateConfiguration, so
// downstream code never branches on absent fields.
type Configuration struct {
	ProductID   string             `json:"product_id"`
	Category    ProductCategory    `json:"category"`
	Shape       string             `json:"shape"`
	Sections    []SectionSelection `json:"sections"`
	Fabric      FabricSelection    `json:"fabric"`
	Dimensions  DimensionSelection `json:"dimensions"`
	Accessories AccessorySelection `json:"accessories"`

	// Factory material choices; validation fills category defaults
	// when the customer leaves them open.
	FoamGrade     string `json:"foam_grade"`
	FrameMaterial string `json:"frame_material"`
}

// TotalUnits counts the physical production units the configuration
// expands into (one job card each).
func (c Configuration) TotalUnits() int {
	n := 0
	for _, s := range c.Sections {
		n += s.Quantity
	}
	return n
}

// DistinctFabricRoles returns the number of distinct roles that have a
// fabric code assigned. Single-colour plans always count as one.
func (c Configuration) DistinctFabricRoles() int {
	if c.Fabric.CladdingPlan == CladdingSingleColour {
		return 1
	}
	if len(c.Fabric.Codes) == 0 {
		return 1
	}
	return len(c.Fabric.Codes)
}
