package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"furnicraft/internal/domain/entities"
	"furnicraft/internal/usecase/interfaces"
)

var (
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidDraftID        = errors.New("invalid draft id")
	ErrDraftNotFound         = errors.New("draft order not found")
	ErrDraftNotOwned         = errors.New("draft order belongs to another customer")
	ErrDraftAlreadyConfirmed = errors.New("draft order already confirmed")
)

// IDraftOrderUseCase is the cart: configurations saved before
// checkout. A draft is mutable by its owning customer only while its
// status is draft.
type IDraftOrderUseCase interface {
	AddToCart(ctx context.Context, customerID string, cfg entities.Configuration) (entities.DraftOrder, error)
	ListCart(ctx context.Context, customerID string) ([]entities.DraftOrder, error)
	RemoveFromCart(ctx context.Context, customerID, draftID string) error
}

type DraftOrderUseCase struct {
	quote IQuoteUseCase
	repo  interfaces.IDraftOrderRepository
}

var _ IDraftOrderUseCase = (*DraftOrderUseCase)(nil)

func NewDraftOrderUseCase(quote IQuoteUseCase, repo interfaces.IDraftOrderRepository) *DraftOrderUseCase {
	return &DraftOrderUseCase{quote: quote, repo: repo}
}

func (u *DraftOrderUseCase) AddToCart(ctx context.Context, customerID string, cfg entities.Configuration) (entities.DraftOrder, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.DraftOrder{}, ErrInvalidCustomerID
	}

	ev, err := u.quote.Evaluate(ctx, cfg)
	if err != nil {
		return entities.DraftOrder{}, err
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	d := entities.DraftOrder{
		ID:              id,
		OrderNumber:     draftOrderNumber(id),
		CustomerID:      customerID,
		ProductID:       ev.Configuration.ProductID,
		Category:        ev.Configuration.Category,
		Configuration:   ev.Configuration,
		CalculatedPrice: ev.Breakdown.Total,
		Breakdown:       ev.Breakdown,
		Status:          entities.DraftStatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, d)
}

func (u *DraftOrderUseCase) ListCart(ctx context.Context, customerID string) ([]entities.DraftOrder, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *DraftOrderUseCase) RemoveFromCart(ctx context.Context, customerID, draftID string) error {
	customerID = strings.TrimSpace(customerID)
	draftID = strings.TrimSpace(draftID)
	if customerID == "" {
		return ErrInvalidCustomerID
	}
	if draftID == "" {
		return ErrInvalidDraftID
	}

	d, err := u.repo.GetByID(ctx, draftID)
	if err != nil {
		return err
	}
	if d.ID == "" {
		return ErrDraftNotFound
	}
	if d.CustomerID != customerID {
		return ErrDraftNotOwned
	}
	if d.Status != entities.DraftStatusDraft {
		return ErrDraftAlreadyConfirmed
	}
	return u.repo.Delete(ctx, draftID)
}

// draftOrderNumber builds the draft-scoped identifier shown in the
// cart; checkout renames it to the confirmed sale order number.
func draftOrderNumber(id string) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("DRF-%s", strings.ToUpper(short))
}
