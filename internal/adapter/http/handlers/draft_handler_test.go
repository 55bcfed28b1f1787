package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"furnicraft/internal/adapter/http/handlers/mocks"
	"furnicraft/internal/domain/entities"
	"furnicraft/internal/usecase"
)

const addToCartBody = `{
	"customer_id": "CUST-77",
	"configuration": {
		"product_id": "SOFA-ALTO",
		"category": "sofa",
		"sections": [{"type": "straight_3_seater", "quantity": 1}],
		"fabric": {"codes": {"primary": "FAB-101"}}
	}
}`

func draftRouter(h *DraftHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	drafts := r.Group("/v1/drafts")
	{
		drafts.POST("", h.AddToCart)
		drafts.GET("", h.ListCart)
		drafts.DELETE("/:id", h.RemoveFromCart)
	}
	return r
}

func TestDraftHandler_AddToCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		uc := mocks.NewMockIDraftOrderUseCase(ctrl)
		uc.EXPECT().AddToCart(gomock.Any(), "CUST-77", gomock.Any()).Return(entities.DraftOrder{
			ID:              "d1",
			OrderNumber:     "DRF-ABCD1234",
			CustomerID:      "CUST-77",
			CalculatedPrice: decimal.NewFromInt(53000),
			Status:          entities.DraftStatusDraft,
		}, nil)

		r := draftRouter(NewDraftHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts", strings.NewReader(addToCartBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["order_number"] != "DRF-ABCD1234" {
			t.Fatalf("expected draft order number, got %v", body["order_number"])
		}
		if body["status"] != "draft" {
			t.Fatalf("expected draft status, got %v", body["status"])
		}
	})

	t.Run("missing customer id fails binding", func(t *testing.T) {
		r := draftRouter(NewDraftHandler(mocks.NewMockIDraftOrderUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts", strings.NewReader(`{"configuration": {"product_id": "X", "category": "sofa"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDraftHandler_ListCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		uc := mocks.NewMockIDraftOrderUseCase(ctrl)
		uc.EXPECT().ListCart(gomock.Any(), "CUST-77").Return([]entities.DraftOrder{{ID: "d1"}, {ID: "d2"}}, nil)

		r := draftRouter(NewDraftHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/drafts?customer_id=CUST-77", nil)
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
			t.Fatalf("expected 2 drafts, got %d", len(body))
		}
	})

	t.Run("missing customer id", func(t *testing.T) {
		r := draftRouter(NewDraftHandler(mocks.NewMockIDraftOrderUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodGet, "/v1/drafts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDraftHandler_RemoveFromCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"success", nil, http.StatusNoContent},
		{"not found", usecase.ErrDraftNotFound, http.StatusNotFound},
		{"not owned", usecase.ErrDraftNotOwned, http.StatusForbidden},
		{"already confirmed", usecase.ErrDraftAlreadyConfirmed, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := mocks.NewMockIDraftOrderUseCase(ctrl)
			uc.EXPECT().RemoveFromCart(gomock.Any(), "CUST-77", "d1").Return(tc.err)

			r := draftRouter(NewDraftHandler(uc))

			req := httptest.NewRequest(http.MethodDelete, "/v1/drafts/d1?customer_id=CUST-77", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}
		})
	}
}
