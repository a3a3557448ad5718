package response

import (
	"time"

	"repairdesk/internal/domain/entities"
)

type RepairItemResponse struct {
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

// RepairItemListResponse carries the items plus the live subtotal billing
// screens pre-fill a new transaction with.
type RepairItemListResponse struct {
	Items    []RepairItemResponse `json:"items"`
	Subtotal int64                `json:"subtotal"`
}

func FromRepairItem(it entities.RepairItem) RepairItemResponse {
	return RepairItemResponse{
		ID:             it.ID,
		DeviceID:       it.DeviceID,
		ServiceID:      it.ServiceID,
		ServiceName:    it.ServiceName,
		PartUsed:       it.PartUsed,
		Cost:           it.Cost,
		WarrantyMonths: it.WarrantyMonths,
		Description:    it.Description,
		CreatedAt:      it.CreatedAt,
	}
}

func FromRepairItems(items []entities.RepairItem, subtotal int64) RepairItemListResponse {
	out := make([]RepairItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromRepairItem(it))
	}
	return RepairItemListResponse{Items: out, Subtotal: subtotal}
}
