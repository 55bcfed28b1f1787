package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"furnicraft/internal/domain/entities"
	mock_interfaces "furnicraft/internal/usecase/interfaces/mocks"
)

func storedDraft(id, customerID string) entities.DraftOrder {
	cfg := testConfig()
	cfg.Sections = []entities.SectionSelection{
		{Type: "straight_3_seater", SeaterSize: 3, Quantity: 2},
		{Type: "corner", SeaterSize: 1, Quantity: 1},
	}
	return entities.DraftOrder{
		ID:            id,
		OrderNumber:   "DRF-TEST",
		CustomerID:    customerID,
		ProductID:     cfg.ProductID,
		Category:      cfg.Category,
		Configuration: cfg,
		Status:        entities.DraftStatusDraft,
	}
}

func TestCheckoutUseCase_Checkout_DecomposesIntoJobCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	drafts := mock_interfaces.NewMockIDraftOrderRepository(ctrl)
	drafts.EXPECT().GetByID(gomock.Any(), "d1").Return(storedDraft("d1", "CUST-77"), nil)
	drafts.EXPECT().ConfirmDrafts(gomock.Any(), []string{"d1"}, gomock.Any()).Return(nil)

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	orders.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.SaleOrder) (entities.SaleOrder, error) { return o, nil })

	jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
	var inserted []entities.JobCard
	jobCards.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cards []entities.JobCard) error {
			inserted = cards
			return nil
		})

	u := NewCheckoutUseCase(quoteOverMocks(ctrl), drafts, orders, jobCards, nil, 30)

	order, cards, err := u.Checkout(context.Background(), "CUST-77", []string{"d1"}, "attempt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(order.OrderNumber, "SO-") {
		t.Fatalf("expected SO- order number, got %q", order.OrderNumber)
	}
	if order.Status != entities.OrderStatusPendingReview {
		t.Fatalf("expected pending_review, got %q", order.Status)
	}
	if len(order.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(order.LineItems))
	}

	// 2x three-seater + 1x corner expand into three independent cards.
	if len(cards) != 3 {
		t.Fatalf("expected 3 job cards, got %d", len(cards))
	}
	wantNumbers := []string{
		order.OrderNumber + "-JC-01-01",
		order.OrderNumber + "-JC-01-02",
		order.OrderNumber + "-JC-01-03",
	}
	for i, c := range cards {
		if c.JobCardNumber != wantNumbers[i] {
			t.Fatalf("card %d: expected %q, got %q", i, wantNumbers[i], c.JobCardNumber)
		}
		if c.SaleOrderNumber != order.OrderNumber {
			t.Fatalf("card %d: wrong sale order %q", i, c.SaleOrderNumber)
		}
		if c.Status != entities.JobCardStatusCreated {
			t.Fatalf("card %d: expected created status, got %q", i, c.Status)
		}
		if c.Specification.ProductType != "modular_sofa" {
			t.Fatalf("card %d: missing technical specification", i)
		}
		if c.AllowanceSnapshot.Category != entities.CategorySofa {
			t.Fatalf("card %d: missing allowance snapshot", i)
		}
	}
	if cards[0].SectionType != "straight_3_seater" || cards[2].SectionType != "corner" {
		t.Fatalf("unexpected card section order: %q, %q, %q", cards[0].SectionType, cards[1].SectionType, cards[2].SectionType)
	}
	if len(inserted) != len(cards) {
		t.Fatalf("repository received %d cards, expected %d", len(inserted), len(cards))
	}

	// The per-card fabric plans reconcile against the line item plan.
	sum := decimal.Zero
	for _, c := range cards {
		sum = sum.Add(c.FabricPlan.TotalMeters)
	}
	if !sum.Equal(order.LineItems[0].FabricPlan.TotalMeters) {
		t.Fatalf("card plans sum %s != line plan %s", sum, order.LineItems[0].FabricPlan.TotalMeters)
	}

	// 30% advance on the order total.
	wantAdvance := order.Total.Mul(decimal.NewFromInt(30)).Div(decimal.NewFromInt(100))
	if !order.AdvanceAmount.Equal(wantAdvance) {
		t.Fatalf("advance %s != %s", order.AdvanceAmount, wantAdvance)
	}
}

func TestCheckoutUseCase_Checkout_OrderNumberIsDeterministic(t *testing.T) {
	a := deriveOrderNumber("CUST-77", []string{"d1", "d2"}, "attempt-1")
	b := deriveOrderNumber("CUST-77", []string{"d1", "d2"}, "attempt-1")
	if a != b {
		t.Fatalf("same attempt produced different order numbers: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "SO-") || len(a) != 13 {
		t.Fatalf("unexpected order number shape: %q", a)
	}
	if c := deriveOrderNumber("CUST-77", []string{"d1", "d2"}, "attempt-2"); c == a {
		t.Fatalf("different attempts must produce different order numbers")
	}
	if c := deriveOrderNumber("CUST-99", []string{"d1", "d2"}, "attempt-1"); c == a {
		t.Fatalf("different customers must produce different order numbers")
	}
}

func TestCheckoutUseCase_Checkout_NoDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := NewCheckoutUseCase(
		quoteOverMocks(ctrl),
		mock_interfaces.NewMockIDraftOrderRepository(ctrl),
		mock_interfaces.NewMockISaleOrderRepository(ctrl),
		mock_interfaces.NewMockIJobCardRepository(ctrl),
		nil, 30,
	)

	_, _, err := u.Checkout(context.Background(), "CUST-77", []string{"", "  "}, "attempt-1")
	if !errors.Is(err, ErrNoDraftsSelected) {
		t.Fatalf("expected ErrNoDraftsSelected, got %v", err)
	}
}

func TestCheckoutUseCase_Checkout_DraftGuards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cases := []struct {
		name  string
		draft entities.DraftOrder
		want  error
	}{
		{"missing", entities.DraftOrder{}, ErrDraftNotFound},
		{"not owned", storedDraft("d1", "CUST-99"), ErrDraftNotOwned},
		{"already confirmed", func() entities.DraftOrder {
			d := storedDraft("d1", "CUST-77")
			d.Status = entities.DraftStatusConfirmed
			return d
		}(), ErrDraftAlreadyConfirmed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			drafts := mock_interfaces.NewMockIDraftOrderRepository(ctrl)
			drafts.EXPECT().GetByID(gomock.Any(), "d1").Return(tc.draft, nil)

			u := NewCheckoutUseCase(
				quoteOverMocks(ctrl),
				drafts,
				mock_interfaces.NewMockISaleOrderRepository(ctrl),
				mock_interfaces.NewMockIJobCardRepository(ctrl),
				nil, 30,
			)

			_, _, err := u.Checkout(context.Background(), "CUST-77", []string{"d1"}, "attempt-1")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCheckoutUseCase_Checkout_ConflictRevertsDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	drafts := mock_interfaces.NewMockIDraftOrderRepository(ctrl)
	drafts.EXPECT().GetByID(gomock.Any(), "d1").Return(storedDraft("d1", "CUST-77"), nil)
	drafts.EXPECT().ConfirmDrafts(gomock.Any(), []string{"d1"}, gomock.Any()).Return(nil)
	drafts.EXPECT().RevertToDraft(gomock.Any(), []string{"d1"}, gomock.Any()).Return(nil)

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	// A zero-value insert means another attempt already owns the number.
	orders.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.SaleOrder{}, nil)
	orders.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	u := NewCheckoutUseCase(
		quoteOverMocks(ctrl),
		drafts,
		orders,
		mock_interfaces.NewMockIJobCardRepository(ctrl),
		nil, 30,
	)

	_, _, err := u.Checkout(context.Background(), "CUST-77", []string{"d1"}, "attempt-1")
	if !errors.Is(err, ErrCheckoutConflict) {
		t.Fatalf("expected ErrCheckoutConflict, got %v", err)
	}
}

// Two attempts over the same drafts derive different order numbers. The
// losing attempt's compensation must carry its own order number so the
// store can refuse to revert drafts the winning attempt confirmed.
func TestCheckoutUseCase_Checkout_CompensationScopedToOwnOrderNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var confirmedUnder, revertedUnder string

	drafts := mock_interfaces.NewMockIDraftOrderRepository(ctrl)
	drafts.EXPECT().GetByID(gomock.Any(), "d1").Return(storedDraft("d1", "CUST-77"), nil)
	drafts.EXPECT().ConfirmDrafts(gomock.Any(), []string{"d1"}, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []string, orderNumber string) error {
			confirmedUnder = orderNumber
			return nil
		})
	drafts.EXPECT().RevertToDraft(gomock.Any(), []string{"d1"}, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []string, orderNumber string) error {
			revertedUnder = orderNumber
			return nil
		})

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	// The rival attempt already owns the sale order slot.
	orders.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.SaleOrder{}, nil)
	orders.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	u := NewCheckoutUseCase(
		quoteOverMocks(ctrl),
		drafts,
		orders,
		mock_interfaces.NewMockIJobCardRepository(ctrl),
		nil, 30,
	)

	_, _, err := u.Checkout(context.Background(), "CUST-77", []string{"d1"}, "attempt-loser")
	if !errors.Is(err, ErrCheckoutConflict) {
		t.Fatalf("expected ErrCheckoutConflict, got %v", err)
	}
	if confirmedUnder == "" {
		t.Fatalf("ConfirmDrafts never received an order number")
	}
	if revertedUnder != confirmedUnder {
		t.Fatalf("revert scoped to %q, expected the attempt's own order number %q", revertedUnder, confirmedUnder)
	}
	rival := deriveOrderNumber("CUST-77", []string{"d1"}, "attempt-winner")
	if revertedUnder == rival {
		t.Fatalf("revert carried a rival attempt's order number %q", rival)
	}
}

func TestCheckoutUseCase_Checkout_JobCardFailureRollsBackEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("insert batch failed")

	drafts := mock_interfaces.NewMockIDraftOrderRepository(ctrl)
	drafts.EXPECT().GetByID(gomock.Any(), "d1").Return(storedDraft("d1", "CUST-77"), nil)
	drafts.EXPECT().ConfirmDrafts(gomock.Any(), []string{"d1"}, gomock.Any()).Return(nil)
	drafts.EXPECT().RevertToDraft(gomock.Any(), []string{"d1"}, gomock.Any()).Return(nil)

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	orders.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.SaleOrder) (entities.SaleOrder, error) { return o, nil })
	orders.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
	jobCards.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(boom)
	jobCards.EXPECT().DeleteBySaleOrder(gomock.Any(), gomock.Any()).Return(nil)

	u := NewCheckoutUseCase(quoteOverMocks(ctrl), drafts, orders, jobCards, nil, 30)

	_, _, err := u.Checkout(context.Background(), "CUST-77", []string{"d1"}, "attempt-1")
	if !errors.Is(err, boom) {
		t.Fatalf("expected insert error, got %v", err)
	}
}

func TestCheckoutUseCase_Checkout_PaymentFailureCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	declined := errors.New("payment declined")

	drafts := mock_interfaces.NewMockIDraftOrderRepository(ctrl)
	drafts.EXPECT().GetByID(gomock.Any(), "d1").Return(storedDraft("d1", "CUST-77"), nil)
	drafts.EXPECT().ConfirmDrafts(gomock.Any(), []string{"d1"}, gomock.Any()).Return(nil)
	drafts.EXPECT().RevertToDraft(gomock.Any(), []string{"d1"}, gomock.Any()).Return(nil)

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	orders.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.SaleOrder) (entities.SaleOrder, error) { return o, nil })
	orders.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
	jobCards.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)
	jobCards.EXPECT().DeleteBySaleOrder(gomock.Any(), gomock.Any()).Return(nil)

	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", json.RawMessage(nil), declined)

	u := NewCheckoutUseCase(quoteOverMocks(ctrl), drafts, orders, jobCards, gateway, 30)

	_, _, err := u.Checkout(context.Background(), "CUST-77", []string{"d1"}, "attempt-1")
	if !errors.Is(err, declined) {
		t.Fatalf("expected payment error, got %v", err)
	}
}

func TestCheckoutUseCase_Checkout_CapturesAdvanceThroughGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	drafts := mock_interfaces.NewMockIDraftOrderRepository(ctrl)
	drafts.EXPECT().GetByID(gomock.Any(), "d1").Return(storedDraft("d1", "CUST-77"), nil)
	drafts.EXPECT().ConfirmDrafts(gomock.Any(), []string{"d1"}, gomock.Any()).Return(nil)

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	orders.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.SaleOrder) (entities.SaleOrder, error) { return o, nil })

	jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
	jobCards.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)

	var payload map[string]any
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, raw json.RawMessage) (string, string, json.RawMessage, error) {
			if err := json.Unmarshal(raw, &payload); err != nil {
				t.Fatalf("invalid payment payload: %v", err)
			}
			return "pay-1", "approved", nil, nil
		})

	u := NewCheckoutUseCase(quoteOverMocks(ctrl), drafts, orders, jobCards, gateway, 30)

	order, _, err := u.Checkout(context.Background(), "CUST-77", []string{"d1"}, "attempt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload["external_reference"] != order.OrderNumber {
		t.Fatalf("payment references %v, expected %q", payload["external_reference"], order.OrderNumber)
	}
	if payload["transaction_amount"] != order.AdvanceAmount.InexactFloat64() {
		t.Fatalf("payment amount %v, expected %v", payload["transaction_amount"], order.AdvanceAmount.InexactFloat64())
	}
}

func TestCheckoutUseCase_Checkout_DedupesAndSortsDraftIDs(t *testing.T) {
	out := dedupeSorted([]string{" d2", "d1", "d2", "", "d1 "})
	if len(out) != 2 || out[0] != "d1" || out[1] != "d2" {
		t.Fatalf("unexpected dedupe result: %v", out)
	}
}
