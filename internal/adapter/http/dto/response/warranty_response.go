package response

import (
	"time"

	"repairdesk/internal/domain/entities"
)

// WarrantyResponse includes the status and coverage derived at response
// time; neither is ever read from storage.
type WarrantyResponse struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"device_id"`
	RepairItemID string    `json:"repair_item_id,omitempty"`
	Code         string    `json:"code"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	Coverage     string    `json:"coverage"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromWarrantyView(v entities.WarrantyView) WarrantyResponse {
	return WarrantyResponse{
		ID:           v.Warranty.ID,
		DeviceID:     v.Warranty.DeviceID,
		RepairItemID: v.Warranty.RepairItemID,
		Code:         v.Warranty.Code,
		StartDate:    v.Warranty.StartDate,
		EndDate:      v.Warranty.EndDate,
		Status:       string(v.Status),
		Coverage:     string(v.Coverage),
		CreatedAt:    v.Warranty.CreatedAt,
	}
}

func FromWarrantyViews(views []entities.WarrantyView) []WarrantyResponse {
	out := make([]WarrantyResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromWarrantyView(v))
	}
	return out
}
