package response

import (
	"time"

	"repairdesk/internal/domain/entities"
)

type TransactionResponse struct {
	ID            string    `json:"id"`
	DeviceID      string    `json:"device_id"`
	Total         int64     `json:"total"`
	Discount      int64     `json:"discount"`
	FinalAmount   int64     `json:"final_amount"`
	PaymentMethod string    `json:"payment_method"`
	GatewayRef    string    `json:"gateway_ref,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		DeviceID:      t.DeviceID,
		Total:         t.Total,
		Discount:      t.Discount,
		FinalAmount:   t.FinalAmount,
		PaymentMethod: string(t.PaymentMethod),
		GatewayRef:    t.GatewayRef,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromTransactions(list []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTransaction(t))
	}
	return out
}
