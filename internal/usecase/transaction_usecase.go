package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidTransactionID   = errors.New("invalid transaction id")
	ErrInvalidTotal           = errors.New("total must not be negative")
	ErrInvalidDiscount        = errors.New("discount must not be negative")
	ErrDiscountExceedsTotal   = errors.New("discount cannot exceed total")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrPaymentGatewayDeclined = errors.New("payment gateway declined the charge")
)

// CreateTransactionInput carries the billed amounts for a device. Total is
// normally pre-filled from the live subtotal but stays editable by staff.
type CreateTransactionInput struct {
	Total         int64
	Discount      int64
	PaymentMethod string
}

// ITransactionUseCase exposes billing-transaction operations.
//
// The final amount is always derived server-side from total and discount.
// Non-cash methods are charged through the payment gateway when one is
// configured; cash is recorded directly.

type ITransactionUseCase interface {
	CreateTransaction(ctx context.Context, deviceID string, in CreateTransactionInput) (entities.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, in CreateTransactionInput) (entities.Transaction, error)
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Transaction, error)
}

type TransactionUseCase struct {
	repo       interfaces.ITransactionRepository
	deviceRepo interfaces.IDeviceRepository
	gateway    interfaces.IPaymentGateway
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository, deviceRepo interfaces.IDeviceRepository, gateway interfaces.IPaymentGateway) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, deviceRepo: deviceRepo, gateway: gateway}
}

func validateTransactionInput(in CreateTransactionInput) (entities.PaymentMethod, error) {
	if in.Total < 0 {
		return "", ErrInvalidTotal
	}
	if in.Discount < 0 {
		return "", ErrInvalidDiscount
	}
	if in.Discount > in.Total {
		return "", ErrDiscountExceedsTotal
	}
	method, err := entities.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return "", ErrInvalidPaymentMethod
	}
	return method, nil
}

func (u *TransactionUseCase) CreateTransaction(ctx context.Context, deviceID string, in CreateTransactionInput) (entities.Transaction, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return entities.Transaction{}, ErrInvalidDeviceID
	}
	method, err := validateTransactionInput(in)
	if err != nil {
		return entities.Transaction{}, err
	}

	device, err := u.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if device.ID == "" {
		return entities.Transaction{}, ErrDeviceNotFound
	}

	now := time.Now().UTC()
	t := entities.Transaction{
		ID:            uuid.NewString(),
		DeviceID:      deviceID,
		Total:         in.Total,
		Discount:      in.Discount,
		FinalAmount:   entities.FinalAmount(in.Total, in.Discount),
		PaymentMethod: method,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if method != entities.PaymentMethodCash {
		ref, err := u.chargeGateway(ctx, t)
		if err != nil {
			return entities.Transaction{}, err
		}
		t.GatewayRef = ref
	}

	return u.repo.Create(ctx, t)
}

// chargeGateway routes a non-cash amount through the external provider.
// A missing gateway degrades to record-only so a shop without a provider
// account can still log MOMO/BANKING settlements done out of band.
func (u *TransactionUseCase) chargeGateway(ctx context.Context, t entities.Transaction) (string, error) {
	if u.gateway == nil {
		log.Printf("[transaction][usecase] no payment gateway configured; recording %s transaction without charge device_id=%s", t.PaymentMethod, t.DeviceID)
		return "", nil
	}

	payload, err := json.Marshal(map[string]any{
		"transaction_amount": t.FinalAmount,
		"description":        fmt.Sprintf("Device %s repair", t.DeviceID),
		"external_reference": t.DeviceID,
		"payment_method_id":  strings.ToLower(string(t.PaymentMethod)),
	})
	if err != nil {
		return "", err
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[transaction][usecase] gateway charge failed device_id=%s err=%v", t.DeviceID, err)
		return "", err
	}
	if providerStatus != "approved" {
		log.Printf("[transaction][usecase] gateway charge declined device_id=%s provider_status=%s", t.DeviceID, providerStatus)
		return "", ErrPaymentGatewayDeclined
	}
	return providerPaymentID, nil
}

// UpdateTransaction revises total/discount/method before the transaction is
// considered settled; the final amount is re-derived.
func (u *TransactionUseCase) UpdateTransaction(ctx context.Context, id string, in CreateTransactionInput) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}
	method, err := validateTransactionInput(in)
	if err != nil {
		return entities.Transaction{}, err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if current.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}

	current.Total = in.Total
	current.Discount = in.Discount
	current.FinalAmount = entities.FinalAmount(in.Total, in.Discount)
	current.PaymentMethod = method
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Transaction{}, err
	}
	if updated.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return updated, nil
}

func (u *TransactionUseCase) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Transaction, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, ErrInvalidDeviceID
	}
	return u.repo.ListByDeviceID(ctx, deviceID)
}
