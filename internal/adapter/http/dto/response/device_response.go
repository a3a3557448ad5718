package response

import (
	"time"

	"repairdesk/internal/domain/entities"
)

type DeviceResponse struct {
	ID                 string     `json:"id"`
	CustomerID         string     `json:"customer_id,omitempty"`
	CustomerName       string     `json:"customer_name"`
	CustomerPhone      string     `json:"customer_phone,omitempty"`
	Brand              string     `json:"brand"`
	Model              string     `json:"model"`
	Status             string     `json:"status"`
	ReceivedDate       time.Time  `json:"received_date"`
	ExpectedReturnDate *time.Time `json:"expected_return_date,omitempty"`
	WarrantyMonths     int        `json:"warranty_months,omitempty"`
	Note               string     `json:"note,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromDevice(d entities.Device) DeviceResponse {
	return DeviceResponse{
		ID:                 d.ID,
		CustomerID:         d.CustomerID,
		CustomerName:       d.CustomerName,
		CustomerPhone:      d.CustomerPhone,
		Brand:              d.Brand,
		Model:              d.Model,
		Status:             string(d.Status),
		ReceivedDate:       d.ReceivedDate,
		ExpectedReturnDate: d.ExpectedReturnDate,
		WarrantyMonths:     d.WarrantyMonths,
		Note:               d.Note,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
