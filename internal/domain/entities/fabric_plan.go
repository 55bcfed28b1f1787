package entities

import "github.com/shopspring/decimal"

// FabricPlan is the computed fabric meter requirement of a
// configuration (or of one production unit of it), broken into the
// cut-plan buckets the factory works with.
//
// TotalMeters is the reconciliation anchor: the unit plans of a line
// item must sum exactly to the line item's own plan.
type FabricPlan struct {
	StructureMeters decimal.Decimal       `json:"structure_meters"`
	ArmrestMeters   decimal.Decimal       `json:"armrest_meters"`
	ConsoleMeters   decimal.Decimal       `json:"console_meters"`
	CornerMeters    decimal.Decimal       `json:"corner_meters"`
	LoungerMeters   decimal.Decimal       `json:"lounger_meters"`
	TotalMeters     decimal.Decimal       `json:"total_meters"`
	FabricCodes     map[FabricRole]string `json:"fabric_codes"`
}

// Add returns the bucket-wise sum of two plans. Fabric codes are taken
// from the receiver; both plans of a line item share one cladding plan.
func (p FabricPlan) Add(o FabricPlan) FabricPlan {
	codes := p.FabricCodes
	if len(codes) == 0 {
		codes = o.FabricCodes
	}
	return FabricPlan{
		StructureMeters: p.StructureMeters.Add(o.StructureMeters),
		ArmrestMeters:   p.ArmrestMeters.Add(o.ArmrestMeters),
		ConsoleMeters:   p.ConsoleMeters.Add(o.ConsoleMeters),
		CornerMeters:    p.CornerMeters.Add(o.CornerMeters),
		LoungerMeters:   p.LoungerMeters.Add(o.LoungerMeters),
		TotalMeters:     p.TotalMeters.Add(o.TotalMeters),
		FabricCodes:     codes,
	}
}
