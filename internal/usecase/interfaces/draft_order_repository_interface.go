package interfaces

import (
	"context"

	"furnicraft/internal/domain/entities"
)

// IDraftOrderRepository abstracts DynamoDB persistence for DraftOrder.
//
// ConfirmDrafts renames the drafts from their draft-scoped order
// numbers to the shared confirmed order number and flips them to
// confirmed, conditionally on each still being a draft. RevertToDraft
// is its compensation: it only touches drafts confirmed under the
// given order number and tolerates drafts that were never confirmed,
// so a failed ConfirmDrafts can be undone blindly without disturbing
// a concurrent checkout that confirmed the same drafts first.
type IDraftOrderRepository interface {
	Create(ctx context.Context, d entities.DraftOrder) (entities.DraftOrder, error)
	GetByID(ctx context.Context, id string) (entities.DraftOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.DraftOrder, error)
	ConfirmDrafts(ctx context.Context, ids []string, orderNumber string) error
	RevertToDraft(ctx context.Context, ids []string, orderNumber string) error
	Delete(ctx context.Context, id string) error
}
