package request

import "time"

// RegisterDeviceRequest is the intake payload. A customer is identified by id
// or by free-text name/phone; at least one must be present.
type RegisterDeviceRequest struct {
	CustomerID         string     `json:"customer_id"`
	CustomerName       string     `json:"customer_name"`
	CustomerPhone      string     `json:"customer_phone"`
	Brand              string     `json:"brand" binding:"required"`
	Model              string     `json:"model" binding:"required"`
	ExpectedReturnDate *time.Time `json:"expected_return_date"`
	WarrantyMonths     int        `json:"warranty_months" binding:"gte=0"`
	Note               string     `json:"note"`
}

// ChangeStatusRequest moves a device to a new lifecycle status.
type ChangeStatusRequest struct {
	NewStatus string `json:"new_status" binding:"required"`
}
