package interfaces

import (
	"context"

	"furnicraft/internal/domain/entities"
)

// ICatalogRepository abstracts the read-only Catalog Store boundary:
// per-product commercial rows and the per-category admin settings.
// Implementations return zero-value records for "not found"; the use
// cases translate that into typed errors.
type ICatalogRepository interface {
	GetBaseRecord(ctx context.Context, category entities.ProductCategory, productID string) (entities.ProductBaseRecord, error)
	GetCategorySettings(ctx context.Context, category entities.ProductCategory) (entities.CategorySettings, error)
}
