package interfaces

import (
	"context"

	"furnicraft/internal/domain/entities"
)

// ISaleOrderRepository abstracts DynamoDB persistence for SaleOrder.
// Insert is conditional on the order number not existing yet; Delete
// exists only for the checkout saga's compensation path.
type ISaleOrderRepository interface {
	Insert(ctx context.Context, o entities.SaleOrder) (entities.SaleOrder, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.SaleOrder, error)
	UpdateStatus(ctx context.Context, orderNumber string, status entities.SaleOrderStatus) (entities.SaleOrder, error)
	Delete(ctx context.Context, orderNumber string) error
}
