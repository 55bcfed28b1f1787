package interfaces

import (
	"context"

	"furnicraft/internal/domain/entities"
)

// IJobCardRepository abstracts DynamoDB persistence for JobCard.
// DeleteBySaleOrder exists only for the checkout saga's compensation
// path; production never deletes cards.
type IJobCardRepository interface {
	InsertBatch(ctx context.Context, cards []entities.JobCard) error
	GetByNumber(ctx context.Context, jobCardNumber string) (entities.JobCard, error)
	ListBySaleOrder(ctx context.Context, orderNumber string) ([]entities.JobCard, error)
	UpdateStatus(ctx context.Context, jobCardNumber string, status entities.JobCardStatus) (entities.JobCard, error)
	DeleteBySaleOrder(ctx context.Context, orderNumber string) error
}
