package entities

import "time"

// RepairItem is one billable service or part applied to a device.
//
// ServiceName is denormalized at creation time so billing history stays
// stable even if the catalog entry is later renamed or repriced.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (device_id-index): device_id
type RepairItem struct {
	ID             string    `json:"id"`
	DeviceID       string    `json:"device_id"`
	ServiceID      string    `json:"service_id,omitempty"`
	ServiceName    string    `json:"service_name"`
	PartUsed       string    `json:"part_used,omitempty"`
	Cost           int64     `json:"cost"`
	WarrantyMonths int       `json:"warranty_months"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
