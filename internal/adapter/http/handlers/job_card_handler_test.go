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

func jobCardRouter(h *JobCardHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cards := r.Group("/v1/job-cards")
	{
		cards.GET("/:number", h.GetJobCard)
		cards.PATCH("/:number/status", h.UpdateJobCardStatus)
	}
	return r
}

func TestJobCardHandler_GetJobCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		uc := mocks.NewMockIProductionUseCase(ctrl)
		uc.EXPECT().GetJobCard(gomock.Any(), "SO-ABCDEF1234-JC-01-01").Return(entities.JobCard{
			JobCardNumber:   "SO-ABCDEF1234-JC-01-01",
			SaleOrderNumber: "SO-ABCDEF1234",
			SectionType:     "straight_3_seater",
			Status:          entities.JobCardStatusCreated,
		}, nil)

		r := jobCardRouter(NewJobCardHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/job-cards/SO-ABCDEF1234-JC-01-01", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["job_card_number"] != "SO-ABCDEF1234-JC-01-01" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		// The settings snapshot is an internal reproduction aid; it is
		// never exposed on the wire.
		if _, ok := body["allowance_snapshot"]; ok {
			t.Fatalf("allowance snapshot leaked into the response")
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := mocks.NewMockIProductionUseCase(ctrl)
		uc.EXPECT().GetJobCard(gomock.Any(), "SO-MISSING-JC-01-01").Return(entities.JobCard{}, usecase.ErrJobCardNotFound)

		r := jobCardRouter(NewJobCardHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/job-cards/SO-MISSING-JC-01-01", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestJobCardHandler_UpdateJobCardStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		uc := mocks.NewMockIProductionUseCase(ctrl)
		uc.EXPECT().UpdateJobCardStatus(gomock.Any(), "SO-ABCDEF1234-JC-01-01", entities.JobCardStatusInProduction).
			Return(entities.JobCard{
				JobCardNumber: "SO-ABCDEF1234-JC-01-01",
				Status:        entities.JobCardStatusInProduction,
			}, nil)

		r := jobCardRouter(NewJobCardHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/job-cards/SO-ABCDEF1234-JC-01-01/status", strings.NewReader(`{"status": "in_production"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "in_production" {
			t.Fatalf("expected in_production, got %v", body["status"])
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := mocks.NewMockIProductionUseCase(ctrl)
		uc.EXPECT().UpdateJobCardStatus(gomock.Any(), "SO-ABCDEF1234-JC-01-01", entities.JobCardStatus("shipped_to_moon")).
			Return(entities.JobCard{}, usecase.ErrInvalidStatusTransition)

		r := jobCardRouter(NewJobCardHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/job-cards/SO-ABCDEF1234-JC-01-01/status", strings.NewReader(`{"status": "shipped_to_moon"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		r := jobCardRouter(NewJobCardHandler(mocks.NewMockIProductionUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPatch, "/v1/job-cards/SO-ABCDEF1234-JC-01-01/status", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
