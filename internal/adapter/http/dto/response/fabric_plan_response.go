package response

import "furnicraft/internal/domain/entities"

type FabricPlanResponse struct {
	StructureMeters float64           `json:"structure_meters"`
	ArmrestMeters   float64           `json:"armrest_meters"`
	ConsoleMeters   float64           `json:"console_meters"`
	CornerMeters    float64           `json:"corner_meters"`
	LoungerMeters   float64           `json:"lounger_meters"`
	TotalMeters     float64           `json:"total_meters"`
	FabricCodes     map[string]string `json:"fabric_codes"`
}

func FromFabricPlan(p entities.FabricPlan) FabricPlanResponse {
	codes := make(map[string]string, len(p.FabricCodes))
	for role, code := range p.FabricCodes {
		codes[string(role)] = code
	}
	return FabricPlanResponse{
		StructureMeters: meters(p.StructureMeters),
		ArmrestMeters:   meters(p.ArmrestMeters),
		ConsoleMeters:   meters(p.ConsoleMeters),
		CornerMeters:    meters(p.CornerMeters),
		LoungerMeters:   meters(p.LoungerMeters),
		TotalMeters:     meters(p.TotalMeters),
		FabricCodes:     codes,
	}
}
