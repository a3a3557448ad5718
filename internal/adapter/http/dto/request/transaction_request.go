package request

// TransactionRequest carries the billed amounts for a device. Total is
// pre-filled client-side from the live subtotal but remains editable; the
// final amount is always derived server-side.
type TransactionRequest struct {
	Total         int64  `json:"total" binding:"gte=0"`
	Discount      int64  `json:"discount" binding:"gte=0"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}
