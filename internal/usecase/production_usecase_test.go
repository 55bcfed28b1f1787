package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"furnicraft/internal/domain/entities"
	mock_interfaces "furnicraft/internal/usecase/interfaces/mocks"
)

func storedOrder(status entities.SaleOrderStatus) entities.SaleOrder {
	return entities.SaleOrder{
		OrderNumber: "SO-ABCDEF1234",
		CustomerID:  "CUST-77",
		Status:      status,
	}
}

func TestProductionUseCase_GetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	orders.EXPECT().GetByOrderNumber(gomock.Any(), "SO-ABCDEF1234").Return(storedOrder(entities.OrderStatusPendingReview), nil)

	u := NewProductionUseCase(orders, mock_interfaces.NewMockIJobCardRepository(ctrl))

	o, err := u.GetOrder(context.Background(), " SO-ABCDEF1234 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.OrderNumber != "SO-ABCDEF1234" {
		t.Fatalf("unexpected order: %+v", o)
	}
}

func TestProductionUseCase_GetOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	orders.EXPECT().GetByOrderNumber(gomock.Any(), "SO-MISSING").Return(entities.SaleOrder{}, nil)

	u := NewProductionUseCase(orders, mock_interfaces.NewMockIJobCardRepository(ctrl))

	if _, err := u.GetOrder(context.Background(), "SO-MISSING"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := u.GetOrder(context.Background(), "  "); !errors.Is(err, ErrInvalidOrderNumber) {
		t.Fatalf("expected ErrInvalidOrderNumber, got %v", err)
	}
}

func TestProductionUseCase_UpdateOrderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("legal transition", func(t *testing.T) {
		orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "SO-ABCDEF1234").Return(storedOrder(entities.OrderStatusPendingReview), nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "SO-ABCDEF1234", entities.OrderStatusStaffApproved).
			Return(storedOrder(entities.OrderStatusStaffApproved), nil)

		u := NewProductionUseCase(orders, mock_interfaces.NewMockIJobCardRepository(ctrl))

		o, err := u.UpdateOrderStatus(context.Background(), "SO-ABCDEF1234", entities.OrderStatusStaffApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusStaffApproved {
			t.Fatalf("expected staff_approved, got %q", o.Status)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "SO-ABCDEF1234").Return(storedOrder(entities.OrderStatusPendingReview), nil)

		u := NewProductionUseCase(orders, mock_interfaces.NewMockIJobCardRepository(ctrl))

		_, err := u.UpdateOrderStatus(context.Background(), "SO-ABCDEF1234", entities.OrderStatusDelivered)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("cancellation blocked in production", func(t *testing.T) {
		orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
		orders.EXPECT().GetByOrderNumber(gomock.Any(), "SO-ABCDEF1234").Return(storedOrder(entities.OrderStatusInProduction), nil)

		u := NewProductionUseCase(orders, mock_interfaces.NewMockIJobCardRepository(ctrl))

		_, err := u.UpdateOrderStatus(context.Background(), "SO-ABCDEF1234", entities.OrderStatusCancelled)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestProductionUseCase_ReleaseForProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	orders.EXPECT().GetByOrderNumber(gomock.Any(), "SO-ABCDEF1234").Return(storedOrder(entities.OrderStatusCustomerConfirmed), nil)
	orders.EXPECT().UpdateStatus(gomock.Any(), "SO-ABCDEF1234", entities.OrderStatusReadyForProduction).
		Return(storedOrder(entities.OrderStatusReadyForProduction), nil)

	jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
	jobCards.EXPECT().ListBySaleOrder(gomock.Any(), "SO-ABCDEF1234").Return([]entities.JobCard{
		{JobCardNumber: "SO-ABCDEF1234-JC-01-01"},
		{JobCardNumber: "SO-ABCDEF1234-JC-01-02"},
	}, nil)
	jobCards.EXPECT().UpdateStatus(gomock.Any(), "SO-ABCDEF1234-JC-01-01", entities.JobCardStatusReadyForProduction).
		Return(entities.JobCard{JobCardNumber: "SO-ABCDEF1234-JC-01-01", Status: entities.JobCardStatusReadyForProduction}, nil)
	jobCards.EXPECT().UpdateStatus(gomock.Any(), "SO-ABCDEF1234-JC-01-02", entities.JobCardStatusReadyForProduction).
		Return(entities.JobCard{JobCardNumber: "SO-ABCDEF1234-JC-01-02", Status: entities.JobCardStatusReadyForProduction}, nil)

	u := NewProductionUseCase(orders, jobCards)

	o, cards, err := u.ReleaseForProduction(context.Background(), "SO-ABCDEF1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != entities.OrderStatusReadyForProduction {
		t.Fatalf("expected ready_for_production, got %q", o.Status)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 released cards, got %d", len(cards))
	}
}

func TestProductionUseCase_ReleaseForProduction_RequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	orders.EXPECT().GetByOrderNumber(gomock.Any(), "SO-ABCDEF1234").Return(storedOrder(entities.OrderStatusPendingReview), nil)

	u := NewProductionUseCase(orders, mock_interfaces.NewMockIJobCardRepository(ctrl))

	_, _, err := u.ReleaseForProduction(context.Background(), "SO-ABCDEF1234")
	if !errors.Is(err, ErrOrderNotConfirmed) {
		t.Fatalf("expected ErrOrderNotConfirmed, got %v", err)
	}
}

func TestProductionUseCase_ReleaseForProduction_ToleratesCardFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	orders.EXPECT().GetByOrderNumber(gomock.Any(), "SO-ABCDEF1234").Return(storedOrder(entities.OrderStatusConfirmedByCustomer), nil)
	orders.EXPECT().UpdateStatus(gomock.Any(), "SO-ABCDEF1234", entities.OrderStatusReadyForProduction).
		Return(storedOrder(entities.OrderStatusReadyForProduction), nil)

	jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
	jobCards.EXPECT().ListBySaleOrder(gomock.Any(), "SO-ABCDEF1234").Return([]entities.JobCard{
		{JobCardNumber: "SO-ABCDEF1234-JC-01-01"},
		{JobCardNumber: "SO-ABCDEF1234-JC-01-02"},
	}, nil)
	jobCards.EXPECT().UpdateStatus(gomock.Any(), "SO-ABCDEF1234-JC-01-01", entities.JobCardStatusReadyForProduction).
		Return(entities.JobCard{}, errors.New("conditional check failed"))
	jobCards.EXPECT().UpdateStatus(gomock.Any(), "SO-ABCDEF1234-JC-01-02", entities.JobCardStatusReadyForProduction).
		Return(entities.JobCard{JobCardNumber: "SO-ABCDEF1234-JC-01-02", Status: entities.JobCardStatusReadyForProduction}, nil)

	u := NewProductionUseCase(orders, jobCards)

	_, cards, err := u.ReleaseForProduction(context.Background(), "SO-ABCDEF1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 released card after partial failure, got %d", len(cards))
	}
}

func TestProductionUseCase_ReleaseForProduction_ListFailureStillReportsRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mock_interfaces.NewMockISaleOrderRepository(ctrl)
	orders.EXPECT().GetByOrderNumber(gomock.Any(), "SO-ABCDEF1234").Return(storedOrder(entities.OrderStatusCustomerConfirmed), nil)
	orders.EXPECT().UpdateStatus(gomock.Any(), "SO-ABCDEF1234", entities.OrderStatusReadyForProduction).
		Return(storedOrder(entities.OrderStatusReadyForProduction), nil)

	jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
	jobCards.EXPECT().ListBySaleOrder(gomock.Any(), "SO-ABCDEF1234").
		Return(nil, errors.New("throughput exceeded"))

	u := NewProductionUseCase(orders, jobCards)

	// The order already moved to ready_for_production; an error would
	// tell the caller to retry a release that is no longer legal.
	o, cards, err := u.ReleaseForProduction(context.Background(), "SO-ABCDEF1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != entities.OrderStatusReadyForProduction {
		t.Fatalf("expected ready_for_production, got %q", o.Status)
	}
	if len(cards) != 0 {
		t.Fatalf("expected no cascaded cards, got %d", len(cards))
	}
}

func TestProductionUseCase_GetJobCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
	jobCards.EXPECT().GetByNumber(gomock.Any(), "SO-ABCDEF1234-JC-01-01").
		Return(entities.JobCard{JobCardNumber: "SO-ABCDEF1234-JC-01-01"}, nil)
	jobCards.EXPECT().GetByNumber(gomock.Any(), "SO-MISSING-JC-01-01").Return(entities.JobCard{}, nil)

	u := NewProductionUseCase(mock_interfaces.NewMockISaleOrderRepository(ctrl), jobCards)

	if _, err := u.GetJobCard(context.Background(), "SO-ABCDEF1234-JC-01-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := u.GetJobCard(context.Background(), "SO-MISSING-JC-01-01"); !errors.Is(err, ErrJobCardNotFound) {
		t.Fatalf("expected ErrJobCardNotFound, got %v", err)
	}
	if _, err := u.GetJobCard(context.Background(), ""); !errors.Is(err, ErrInvalidJobCardNumber) {
		t.Fatalf("expected ErrInvalidJobCardNumber, got %v", err)
	}
}

func TestProductionUseCase_UpdateJobCardStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
		jobCards.EXPECT().UpdateStatus(gomock.Any(), "SO-ABCDEF1234-JC-01-01", entities.JobCardStatusInProduction).
			Return(entities.JobCard{JobCardNumber: "SO-ABCDEF1234-JC-01-01", Status: entities.JobCardStatusInProduction}, nil)

		u := NewProductionUseCase(mock_interfaces.NewMockISaleOrderRepository(ctrl), jobCards)

		c, err := u.UpdateJobCardStatus(context.Background(), "SO-ABCDEF1234-JC-01-01", entities.JobCardStatusInProduction)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.JobCardStatusInProduction {
			t.Fatalf("expected in_production, got %q", c.Status)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		u := NewProductionUseCase(
			mock_interfaces.NewMockISaleOrderRepository(ctrl),
			mock_interfaces.NewMockIJobCardRepository(ctrl),
		)

		_, err := u.UpdateJobCardStatus(context.Background(), "SO-ABCDEF1234-JC-01-01", "shipped_to_moon")
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("missing card", func(t *testing.T) {
		jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
		jobCards.EXPECT().UpdateStatus(gomock.Any(), "SO-MISSING-JC-01-01", entities.JobCardStatusDone).
			Return(entities.JobCard{}, nil)

		u := NewProductionUseCase(mock_interfaces.NewMockISaleOrderRepository(ctrl), jobCards)

		_, err := u.UpdateJobCardStatus(context.Background(), "SO-MISSING-JC-01-01", entities.JobCardStatusDone)
		if !errors.Is(err, ErrJobCardNotFound) {
			t.Fatalf("expected ErrJobCardNotFound, got %v", err)
		}
	})
}

func TestProductionUseCase_ListJobCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobCards := mock_interfaces.NewMockIJobCardRepository(ctrl)
	jobCards.EXPECT().ListBySaleOrder(gomock.Any(), "SO-ABCDEF1234").Return([]entities.JobCard{{}, {}}, nil)

	u := NewProductionUseCase(mock_interfaces.NewMockISaleOrderRepository(ctrl), jobCards)

	cards, err := u.ListJobCards(context.Background(), "SO-ABCDEF1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}

	if _, err := u.ListJobCards(context.Background(), " "); !errors.Is(err, ErrInvalidOrderNumber) {
		t.Fatalf("expected ErrInvalidOrderNumber, got %v", err)
	}
}
