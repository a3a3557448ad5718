package entities

import (
	"errors"
	"time"
)

// PaymentMethod is how a transaction was settled.
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "CASH"
	PaymentMethodMomo    PaymentMethod = "MOMO"
	PaymentMethodBanking PaymentMethod = "BANKING"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// ParsePaymentMethod validates a raw payment method value.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch PaymentMethod(raw) {
	case PaymentMethodCash, PaymentMethodMomo, PaymentMethodBanking:
		return PaymentMethod(raw), nil
	}
	return "", ErrUnknownPaymentMethod
}

// Transaction is one payment record against a device's accumulated repair
// items. FinalAmount is always derived (FinalAmount calculator), never taken
// from the caller. More than one transaction may exist per device
// historically; outstanding-balance math uses the most recent one.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (device_id-index): device_id
type Transaction struct {
	ID            string        `json:"id"`
	DeviceID      string        `json:"device_id"`
	Total         int64         `json:"total"`
	Discount      int64         `json:"discount"`
	FinalAmount   int64         `json:"final_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	GatewayRef    string        `json:"gateway_ref,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
