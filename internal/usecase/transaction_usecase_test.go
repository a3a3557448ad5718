package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"repairdesk/internal/domain/entities"
	mock_interfaces "repairdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTransactionUseCase_CreateTransaction_Validations(t *testing.T) {
	cases := []struct {
		name string
		in   CreateTransactionInput
		want error
	}{
		{name: "negative total", in: CreateTransactionInput{Total: -1, PaymentMethod: "CASH"}, want: ErrInvalidTotal},
		{name: "negative discount", in: CreateTransactionInput{Total: 100, Discount: -1, PaymentMethod: "CASH"}, want: ErrInvalidDiscount},
		{name: "discount exceeds total", in: CreateTransactionInput{Total: 80, Discount: 100, PaymentMethod: "CASH"}, want: ErrDiscountExceedsTotal},
		{name: "unknown method", in: CreateTransactionInput{Total: 100, PaymentMethod: "CARD"}, want: ErrInvalidPaymentMethod},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewTransactionUseCase(nil, nil, nil)
			_, err := uc.CreateTransaction(context.Background(), "dev-1", tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("empty device id", func(t *testing.T) {
		uc := NewTransactionUseCase(nil, nil, nil)
		_, err := uc.CreateTransaction(context.Background(), " ", CreateTransactionInput{Total: 100, PaymentMethod: "CASH"})
		if !errors.Is(err, ErrInvalidDeviceID) {
			t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
		}
	})
}

func TestTransactionUseCase_CreateTransaction(t *testing.T) {
	device := entities.Device{ID: "dev-1", Status: entities.DeviceStatusCompleted}

	t.Run("device not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		deviceRepo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewTransactionUseCase(repo, deviceRepo, nil)

		deviceRepo.EXPECT().GetByID(gomock.Any(), "dev-404").Return(entities.Device{}, nil)

		_, err := uc.CreateTransaction(context.Background(), "dev-404", CreateTransactionInput{Total: 100, PaymentMethod: "CASH"})
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})

	t.Run("cash derives final amount and skips gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		deviceRepo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTransactionUseCase(repo, deviceRepo, gateway)

		deviceRepo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(device, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Transaction{})).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.FinalAmount != 750000 {
					t.Fatalf("expected final amount 750000, got %d", tx.FinalAmount)
				}
				if tx.GatewayRef != "" {
					t.Fatalf("cash must not carry a gateway ref")
				}
				if tx.ID == "" || tx.CreatedAt.IsZero() {
					t.Fatalf("incomplete transaction: %+v", tx)
				}
				return tx, nil
			},
		)

		tx, err := uc.CreateTransaction(context.Background(), "dev-1", CreateTransactionInput{Total: 800000, Discount: 50000, PaymentMethod: "CASH"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.PaymentMethod != entities.PaymentMethodCash {
			t.Fatalf("unexpected method: %s", tx.PaymentMethod)
		}
	})

	t.Run("non-cash charges the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		deviceRepo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTransactionUseCase(repo, deviceRepo, gateway)

		deviceRepo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(device, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload should be valid json: %v", err)
				}
				if body["transaction_amount"] != float64(90) {
					t.Fatalf("expected charged amount 90, got %v", body["transaction_amount"])
				}
				if body["external_reference"] != "dev-1" {
					t.Fatalf("external_reference not set")
				}
				if body["payment_method_id"] != "momo" {
					t.Fatalf("expected lowered method id, got %v", body["payment_method_id"])
				}
				return "pay-1", "approved", json.RawMessage(`{"id":1}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.GatewayRef != "pay-1" {
					t.Fatalf("expected gateway ref pay-1, got %q", tx.GatewayRef)
				}
				return tx, nil
			},
		)

		if _, err := uc.CreateTransaction(context.Background(), "dev-1", CreateTransactionInput{Total: 100, Discount: 10, PaymentMethod: "MOMO"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway decline aborts the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		deviceRepo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTransactionUseCase(repo, deviceRepo, gateway)

		deviceRepo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(device, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "rejected", nil, nil)

		_, err := uc.CreateTransaction(context.Background(), "dev-1", CreateTransactionInput{Total: 100, PaymentMethod: "BANKING"})
		if !errors.Is(err, ErrPaymentGatewayDeclined) {
			t.Fatalf("expected ErrPaymentGatewayDeclined, got %v", err)
		}
	})

	t.Run("gateway error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		deviceRepo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTransactionUseCase(repo, deviceRepo, gateway)

		deviceRepo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(device, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateTransaction(context.Background(), "dev-1", CreateTransactionInput{Total: 100, PaymentMethod: "MOMO"})
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("missing gateway records non-cash without a charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		deviceRepo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewTransactionUseCase(repo, deviceRepo, nil)

		deviceRepo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(device, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.GatewayRef != "" {
					t.Fatalf("expected empty gateway ref, got %q", tx.GatewayRef)
				}
				return tx, nil
			},
		)

		if _, err := uc.CreateTransaction(context.Background(), "dev-1", CreateTransactionInput{Total: 100, PaymentMethod: "BANKING"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTransactionUseCase_UpdateTransaction(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewTransactionUseCase(nil, nil, nil)
		_, err := uc.UpdateTransaction(context.Background(), " ", CreateTransactionInput{Total: 100, PaymentMethod: "CASH"})
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "tx-404").Return(entities.Transaction{}, nil)

		_, err := uc.UpdateTransaction(context.Background(), "tx-404", CreateTransactionInput{Total: 100, PaymentMethod: "CASH"})
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("re-derives final amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{ID: "tx-1", DeviceID: "dev-1", Total: 100, FinalAmount: 100, PaymentMethod: entities.PaymentMethodCash}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.Total != 800000 || tx.Discount != 50000 || tx.FinalAmount != 750000 {
					t.Fatalf("amounts not re-derived: %+v", tx)
				}
				if tx.PaymentMethod != entities.PaymentMethodMomo {
					t.Fatalf("method not updated: %s", tx.PaymentMethod)
				}
				return tx, nil
			},
		)

		tx, err := uc.UpdateTransaction(context.Background(), "tx-1", CreateTransactionInput{Total: 800000, Discount: 50000, PaymentMethod: "MOMO"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.FinalAmount != 750000 {
			t.Fatalf("expected 750000, got %d", tx.FinalAmount)
		}
	})
}

func TestTransactionUseCase_ListByDeviceID(t *testing.T) {
	t.Run("invalid device id", func(t *testing.T) {
		uc := NewTransactionUseCase(nil, nil, nil)
		_, err := uc.ListByDeviceID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidDeviceID) {
			t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo, nil, nil)

		expected := []entities.Transaction{{ID: "tx-1"}}
		repo.EXPECT().ListByDeviceID(gomock.Any(), "dev-1").Return(expected, nil)

		res, err := uc.ListByDeviceID(context.Background(), " dev-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "tx-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
