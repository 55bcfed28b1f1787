package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"furnicraft/internal/domain/entities"
	"furnicraft/internal/domain/fabricplan"
	"furnicraft/internal/domain/techspec"
	"furnicraft/internal/usecase/interfaces"
)

var (
	ErrNoDraftsSelected = errors.New("no drafts selected for checkout")
	ErrCheckoutConflict = errors.New("checkout already in progress for these drafts")
)

// defaultAdvancePercent is the share of the order total captured at
// checkout; overridable per deployment via CHECKOUT_ADVANCE_PERCENT.
const defaultAdvancePercent = 30

// ICheckoutUseCase is the order decomposer: it turns a customer's
// confirmed drafts into one sale order plus one job card per physical
// production unit, as a single compensated unit of work.
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, customerID string, draftIDs []string, attemptKey string) (entities.SaleOrder, []entities.JobCard, error)
}

type CheckoutUseCase struct {
	quote          IQuoteUseCase
	drafts         interfaces.IDraftOrderRepository
	orders         interfaces.ISaleOrderRepository
	jobCards       interfaces.IJobCardRepository
	gateway        interfaces.IPaymentGateway
	advancePercent decimal.Decimal
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	quote IQuoteUseCase,
	drafts interfaces.IDraftOrderRepository,
	orders interfaces.ISaleOrderRepository,
	jobCards interfaces.IJobCardRepository,
	gateway interfaces.IPaymentGateway,
	advancePercent int,
) *CheckoutUseCase {
	if advancePercent <= 0 || advancePercent > 100 {
		advancePercent = defaultAdvancePercent
	}
	return &CheckoutUseCase{
		quote:          quote,
		drafts:         drafts,
		orders:         orders,
		jobCards:       jobCards,
		gateway:        gateway,
		advancePercent: decimal.NewFromInt(int64(advancePercent)),
	}
}

// Checkout re-prices every draft against the current catalog state
// (the price captured at add-to-cart time may be stale), expands the
// configurations into job cards, and persists everything through a
// saga: confirm drafts → insert sale order → insert job cards →
// capture advance. Any failure compensates in reverse, leaving the
// drafts in draft status and no sale order behind.
//
// The order number derives deterministically from the checkout
// attempt, never from wall-clock time, so a retry of the same attempt
// cannot double-create job cards.
func (u *CheckoutUseCase) Checkout(ctx context.Context, customerID string, draftIDs []string, attemptKey string) (entities.SaleOrder, []entities.JobCard, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.SaleOrder{}, nil, ErrInvalidCustomerID
	}
	ids := dedupeSorted(draftIDs)
	if len(ids) == 0 {
		return entities.SaleOrder{}, nil, ErrNoDraftsSelected
	}

	log.Printf("[checkout][usecase] start customer_id=%s drafts=%d", customerID, len(ids))

	orderNumber := deriveOrderNumber(customerID, ids, attemptKey)

	lineItems := make([]entities.LineItem, 0, len(ids))
	cards := make([]entities.JobCard, 0, len(ids))
	now := time.Now().UTC()

	for i, id := range ids {
		draft, err := u.drafts.GetByID(ctx, id)
		if err != nil {
			return entities.SaleOrder{}, nil, err
		}
		if draft.ID == "" {
			return entities.SaleOrder{}, nil, fmt.Errorf("%w: %s", ErrDraftNotFound, id)
		}
		if draft.CustomerID != customerID {
			return entities.SaleOrder{}, nil, fmt.Errorf("%w: %s", ErrDraftNotOwned, id)
		}
		if draft.Status != entities.DraftStatusDraft {
			return entities.SaleOrder{}, nil, fmt.Errorf("%w: %s", ErrDraftAlreadyConfirmed, id)
		}

		ev, err := u.quote.Evaluate(ctx, draft.Configuration)
		if err != nil {
			return entities.SaleOrder{}, nil, err
		}

		li := entities.LineItem{
			ID:            fmt.Sprintf("%s-LI-%02d", orderNumber, i+1),
			DraftOrderID:  draft.ID,
			ProductID:     ev.Configuration.ProductID,
			Category:      ev.Configuration.Category,
			Configuration: ev.Configuration,
			Breakdown:     ev.Breakdown,
			FabricPlan:    ev.FabricPlan,
			Total:         ev.Breakdown.Total,
		}
		lineItems = append(lineItems, li)

		lineCards, err := u.expandLineItem(li, ev, orderNumber, i+1, now)
		if err != nil {
			return entities.SaleOrder{}, nil, err
		}
		cards = append(cards, lineCards...)
	}

	order := buildSaleOrder(orderNumber, customerID, lineItems, u.advancePercent, now)

	sagaErr := newSaga(
		sagaStep{
			name: "confirm drafts",
			do:   func(ctx context.Context) error { return u.drafts.ConfirmDrafts(ctx, ids, orderNumber) },
			undo: func(ctx context.Context) error { return u.drafts.RevertToDraft(ctx, ids, orderNumber) },
		},
		sagaStep{
			name: "insert sale order",
			do: func(ctx context.Context) error {
				inserted, err := u.orders.Insert(ctx, order)
				if err != nil {
					return err
				}
				if inserted.OrderNumber == "" {
					return fmt.Errorf("%w: %s", ErrCheckoutConflict, orderNumber)
				}
				return nil
			},
			undo: func(ctx context.Context) error { return u.orders.Delete(ctx, orderNumber) },
		},
		sagaStep{
			name: "insert job cards",
			do:   func(ctx context.Context) error { return u.jobCards.InsertBatch(ctx, cards) },
			undo: func(ctx context.Context) error { return u.jobCards.DeleteBySaleOrder(ctx, orderNumber) },
		},
		sagaStep{
			name: "capture advance",
			do:   func(ctx context.Context) error { return u.captureAdvance(ctx, order) },
			// Refunds are owned by the payment provider's dashboard;
			// a failed later step cannot happen (this step is last).
			undo: nil,
		},
	).run(ctx)
	if sagaErr != nil {
		log.Printf("[checkout][usecase] rolled back customer_id=%s order_number=%s err=%v", customerID, orderNumber, sagaErr)
		return entities.SaleOrder{}, nil, sagaErr
	}

	log.Printf("[checkout][usecase] success customer_id=%s order_number=%s line_items=%d job_cards=%d", customerID, orderNumber, len(lineItems), len(cards))
	return order, cards, nil
}

// expandLineItem yields one job card per physical production unit.
// Quantity > 1 of the same section type still yields separate cards:
// each is an independently trackable unit on the floor.
func (u *CheckoutUseCase) expandLineItem(li entities.LineItem, ev Evaluation, orderNumber string, lineIdx int, now time.Time) ([]entities.JobCard, error) {
	units, err := fabricplan.PlanUnits(ev.Profile, ev.Settings, ev.Configuration)
	if err != nil {
		return nil, err
	}

	cards := make([]entities.JobCard, 0, len(units))
	for n, unit := range units {
		spec := techspec.Generate(ev.Profile, ev.Configuration, unit.SectionType, unit.Seats)
		cards = append(cards, entities.JobCard{
			JobCardNumber:     fmt.Sprintf("%s-JC-%02d-%02d", orderNumber, lineIdx, n+1),
			SaleOrderNumber:   orderNumber,
			LineItemID:        li.ID,
			Category:          li.Category,
			SectionType:       unit.SectionType,
			UnitIndex:         n,
			Configuration:     ev.Configuration,
			FabricPlan:        unit.Plan,
			Specification:     spec,
			AllowanceSnapshot: ev.Settings,
			Status:            entities.JobCardStatusCreated,
			Priority:          entities.PriorityNormal,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}
	return cards, nil
}

func (u *CheckoutUseCase) captureAdvance(ctx context.Context, order entities.SaleOrder) error {
	if u.gateway == nil {
		log.Printf("[checkout][usecase] no payment gateway configured, skipping advance capture order_number=%s", order.OrderNumber)
		return nil
	}
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": order.AdvanceAmount.InexactFloat64(),
		"external_reference": order.OrderNumber,
		"description":        fmt.Sprintf("Advance for order %s", order.OrderNumber),
	})
	if err != nil {
		return err
	}
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return err
	}
	log.Printf("[checkout][usecase] advance captured order_number=%s provider_payment_id=%s provider_status=%s", order.OrderNumber, paymentID, status)
	return nil
}

func buildSaleOrder(orderNumber, customerID string, lineItems []entities.LineItem, advancePercent decimal.Decimal, now time.Time) entities.SaleOrder {
	subtotal := decimal.Zero
	discount := decimal.Zero
	total := decimal.Zero
	for _, li := range lineItems {
		total = total.Add(li.Total)
		discount = discount.Sub(li.Breakdown.DiscountComponent)
		subtotal = subtotal.Add(li.Total.Sub(li.Breakdown.DiscountComponent))
	}
	return entities.SaleOrder{
		OrderNumber:   orderNumber,
		CustomerID:    customerID,
		LineItems:     lineItems,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         total,
		AdvanceAmount: total.Mul(advancePercent).Div(decimal.NewFromInt(100)),
		Status:        entities.OrderStatusPendingReview,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// deriveOrderNumber hashes the checkout attempt into a stable order
// number. Same customer, same drafts, same attempt key → same number.
func deriveOrderNumber(customerID string, sortedDraftIDs []string, attemptKey string) string {
	h := sha256.New()
	h.Write([]byte(customerID))
	for _, id := range sortedDraftIDs {
		h.Write([]byte("|"))
		h.Write([]byte(id))
	}
	h.Write([]byte("#"))
	h.Write([]byte(strings.TrimSpace(attemptKey)))
	sum := hex.EncodeToString(h.Sum(nil))
	return "SO-" + strings.ToUpper(sum[:10])
}

func dedupeSorted(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
