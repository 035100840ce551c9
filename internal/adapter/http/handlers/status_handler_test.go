package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pix_checkout/internal/adapter/http/handlers/mocks"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func doStatus(t *testing.T, uc *mocks.MockIStatusUseCase, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	h := NewStatusHandler(uc)
	r := gin.New()
	r.GET("/api/payment/status", h.GetStatus)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestStatusHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("id query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIStatusUseCase(ctrl)
		uc.EXPECT().GetStatus(gomock.Any(), "T1").Return(entities.PaymentStatus{TransactionID: "T1", Status: "PAID"}, nil)

		w, body := doStatus(t, uc, "/api/payment/status?id=%20T1%20")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body["success"] != true || body["status"] != "PAID" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("transaction_id alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIStatusUseCase(ctrl)
		uc.EXPECT().GetStatus(gomock.Any(), "T2").Return(entities.PaymentStatus{TransactionID: "T2", Status: "PENDING"}, nil)

		w, _ := doStatus(t, uc, "/api/payment/status?transaction_id=T2")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("blank id falls back to transaction_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIStatusUseCase(ctrl)
		uc.EXPECT().GetStatus(gomock.Any(), "T1").Return(entities.PaymentStatus{Status: "PENDING"}, nil)

		w, _ := doStatus(t, uc, "/api/payment/status?id=%20&transaction_id=T1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIStatusUseCase(ctrl)
		uc.EXPECT().GetStatus(gomock.Any(), "").Return(entities.PaymentStatus{}, usecase.ErrMissingTransactionID)

		w, body := doStatus(t, uc, "/api/payment/status")
		if w.Code != http.StatusBadRequest || body["message"] != "id é obrigatório" {
			t.Fatalf("expected 400, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIStatusUseCase(ctrl)
		uc.EXPECT().GetStatus(gomock.Any(), "T1").Return(entities.PaymentStatus{}, usecase.ErrGatewayNotConfigured)

		w, _ := doStatus(t, uc, "/api/payment/status?id=T1")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("exhausted carries last attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIStatusUseCase(ctrl)
		uc.EXPECT().GetStatus(gomock.Any(), "T1").Return(entities.PaymentStatus{}, &usecase.StatusUnavailableError{
			TransactionID: "T1",
			Attempts:      4,
			Last:          usecase.StatusAttempt{Candidate: "c4", OK: false, HTTPStatus: 404, Body: map[string]any{"message": "fourth"}},
		})

		w, body := doStatus(t, uc, "/api/payment/status?id=T1")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		last, ok := body["last"].(map[string]any)
		if !ok {
			t.Fatalf("expected last diagnostics, got %s", w.Body.String())
		}
		lastBody, _ := last["body"].(map[string]any)
		if last["ok"] != false || last["status"] != float64(404) || lastBody["message"] != "fourth" {
			t.Fatalf("unexpected last: %+v", last)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIStatusUseCase(ctrl)
		uc.EXPECT().GetStatus(gomock.Any(), "T1").Return(entities.PaymentStatus{}, fmt.Errorf("query status: %w", errors.New("timeout")))

		w, body := doStatus(t, uc, "/api/payment/status?id=T1")
		if w.Code != http.StatusInternalServerError || body["error"] != "query status: timeout" {
			t.Fatalf("expected 500 with error, got %d %s", w.Code, w.Body.String())
		}
	})
}
