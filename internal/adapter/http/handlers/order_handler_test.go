package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"furnicraft/internal/adapter/http/handlers/mocks"
	"furnicraft/internal/domain/entities"
	"furnicraft/internal/usecase"
)

func orderRouter(h *OrderHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	orders := r.Group("/v1/orders")
	{
		orders.GET("/:order_number", h.GetOrder)
		orders.PATCH("/:order_number/status", h.UpdateOrderStatus)
		orders.POST("/:order_number/release", h.ReleaseForProduction)
		orders.GET("/:order_number/job-cards", h.ListJobCards)
	}
	return r
}

func TestOrderHandler_GetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		uc := mocks.NewMockIProductionUseCase(ctrl)
		uc.EXPECT().GetOrder(gomock.Any(), "SO-ABCDEF1234").Return(entities.SaleOrder{
			OrderNumber: "SO-ABCDEF1234",
			Status:      entities.OrderStatusPendingReview,
		}, nil)

		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/SO-ABCDEF1234", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["order_number"] != "SO-ABCDEF1234" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := mocks.NewMockIProductionUseCase(ctrl)
		uc.EXPECT().GetOrder(gomock.Any(), "SO-MISSING").Return(entities.SaleOrder{}, usecase.ErrOrderNotFound)

		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/SO-MISSING", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		uc := mocks.NewMockIProductionUseCase(ctrl)
		uc.EXPECT().UpdateOrderStatus(gomock.Any(), "SO-ABCDEF1234", entities.OrderStatusStaffApproved).
			Return(entities.SaleOrder{OrderNumber: "SO-ABCDEF1234", Status: entities.OrderStatusStaffApproved}, nil)

		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/SO-ABCDEF1234/status", strings.NewReader(`{"status": "staff_approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		uc := mocks.NewMockIProductionUseCase(ctrl)
		uc.EXPECT().UpdateOrderStatus(gomock.Any(), "SO-ABCDEF1234", entities.OrderStatusDelivered).
			Return(entities.SaleOrder{}, usecase.ErrInvalidStatusTransition)

		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/SO-ABCDEF1234/status", strings.NewReader(`{"status": "delivered"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "INVALID_STATUS_TRANSITION" {
			t.Fatalf("expected INVALID_STATUS_TRANSITION, got %v", body["code"])
		}
	})

	t.Run("missing status", func(t *testing.T) {
		r := orderRouter(NewOrderHandler(mocks.NewMockIProductionUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/SO-ABCDEF1234/status", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ReleaseForProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		uc := mocks.NewMockIProductionUseCase(ctrl)
		uc.EXPECT().ReleaseForProduction(gomock.Any(), "SO-ABCDEF1234").Return(
			entities.SaleOrder{OrderNumber: "SO-ABCDEF1234", Status: entities.OrderStatusReadyForProduction},
			[]entities.JobCard{{JobCardNumber: "SO-ABCDEF1234-JC-01-01", Status: entities.JobCardStatusReadyForProduction}},
			nil,
		)

		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/SO-ABCDEF1234/release", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		cards, ok := body["job_cards"].([]any)
		if !ok || len(cards) != 1 {
			t.Fatalf("expected 1 released card, got %v", body["job_cards"])
		}
	})

	t.Run("not confirmed", func(t *testing.T) {
		uc := mocks.NewMockIProductionUseCase(ctrl)
		uc.EXPECT().ReleaseForProduction(gomock.Any(), "SO-ABCDEF1234").
			Return(entities.SaleOrder{}, nil, usecase.ErrOrderNotConfirmed)

		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/SO-ABCDEF1234/release", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "ORDER_NOT_CONFIRMED" {
			t.Fatalf("expected ORDER_NOT_CONFIRMED, got %v", body["code"])
		}
	})
}

func TestOrderHandler_ListJobCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIProductionUseCase(ctrl)
	uc.EXPECT().ListJobCards(gomock.Any(), "SO-ABCDEF1234").Return([]entities.JobCard{
		{JobCardNumber: "SO-ABCDEF1234-JC-01-01"},
		{JobCardNumber: "SO-ABCDEF1234-JC-01-02"},
	}, nil)

	r := orderRouter(NewOrderHandler(uc))

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/SO-ABCDEF1234/job-cards", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(body))
	}
}
