package interfaces

import (
	"context"

	"furnicraft/internal/domain/entities"
)

// IFabricLedgerRepository abstracts the read-only Fabric Ledger: fabric
// identifiers with cost-per-meter and upgrade surcharge.
type IFabricLedgerRepository interface {
	GetFabric(ctx context.Context, code string) (entities.FabricRate, error)
}
