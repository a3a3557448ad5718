package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"repairdesk/internal/adapter/http/handlers/mocks"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/devices/:id/transactions", h.CreateTransaction)

		req := httptest.NewRequest(http.MethodPost, "/v1/devices/dev-1/transactions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payment method fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/devices/:id/transactions", h.CreateTransaction)

		req := httptest.NewRequest(http.MethodPost, "/v1/devices/dev-1/transactions", bytes.NewBufferString(`{"total":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("discount exceeding total maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/devices/:id/transactions", h.CreateTransaction)

		uc.EXPECT().CreateTransaction(gomock.Any(), "dev-1", usecase.CreateTransactionInput{Total: 80, Discount: 100, PaymentMethod: "CASH"}).
			Return(entities.Transaction{}, usecase.ErrDiscountExceedsTotal)

		req := httptest.NewRequest(http.MethodPost, "/v1/devices/dev-1/transactions", bytes.NewBufferString(`{"total":80,"discount":100,"payment_method":"CASH"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "DISCOUNT_EXCEEDS_TOTAL" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("gateway decline maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/devices/:id/transactions", h.CreateTransaction)

		uc.EXPECT().CreateTransaction(gomock.Any(), "dev-1", gomock.Any()).Return(entities.Transaction{}, usecase.ErrPaymentGatewayDeclined)

		req := httptest.NewRequest(http.MethodPost, "/v1/devices/dev-1/transactions", bytes.NewBufferString(`{"total":100,"payment_method":"MOMO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/devices/:id/transactions", h.CreateTransaction)

		uc.EXPECT().CreateTransaction(gomock.Any(), "dev-1", usecase.CreateTransactionInput{Total: 800000, Discount: 50000, PaymentMethod: "CASH"}).
			Return(entities.Transaction{ID: "tx-1", DeviceID: "dev-1", Total: 800000, Discount: 50000, FinalAmount: 750000, PaymentMethod: entities.PaymentMethodCash}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/devices/dev-1/transactions", bytes.NewBufferString(`{"total":800000,"discount":50000,"payment_method":"CASH"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["final_amount"] != float64(750000) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.PUT("/v1/transactions/:id", h.UpdateTransaction)

		uc.EXPECT().UpdateTransaction(gomock.Any(), "tx-404", gomock.Any()).Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/transactions/tx-404", bytes.NewBufferString(`{"total":100,"payment_method":"CASH"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.PUT("/v1/transactions/:id", h.UpdateTransaction)

		uc.EXPECT().UpdateTransaction(gomock.Any(), "tx-1", usecase.CreateTransactionInput{Total: 200, Discount: 50, PaymentMethod: "BANKING"}).
			Return(entities.Transaction{ID: "tx-1", Total: 200, Discount: 50, FinalAmount: 150, PaymentMethod: entities.PaymentMethodBanking}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/transactions/tx-1", bytes.NewBufferString(`{"total":200,"discount":50,"payment_method":"BANKING"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_ListByDevice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITransactionUseCase(ctrl)
	h := NewTransactionHandler(uc)

	r := gin.New()
	r.GET("/v1/devices/:id/transactions", h.ListByDevice)

	uc.EXPECT().ListByDeviceID(gomock.Any(), "dev-1").Return([]entities.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/devices/dev-1/transactions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapTransactionError(t *testing.T) {
	if got := mapTransactionError(usecase.ErrInvalidTotal); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTransactionError(usecase.ErrDiscountExceedsTotal); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTransactionError(usecase.ErrInvalidPaymentMethod); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTransactionError(usecase.ErrDeviceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapTransactionError(usecase.ErrTransactionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapTransactionError(usecase.ErrPaymentGatewayDeclined); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapTransactionError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
