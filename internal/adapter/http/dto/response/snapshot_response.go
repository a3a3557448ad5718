package response

import "repairdesk/internal/domain/entities"

// OrderSnapshotResponse is the combined billing/warranty view for one device.
type OrderSnapshotResponse struct {
	Device            DeviceResponse       `json:"device"`
	Items             []RepairItemResponse `json:"items"`
	Subtotal          int64                `json:"subtotal"`
	Outstanding       int64                `json:"outstanding"`
	Warranties        []WarrantyResponse   `json:"warranties"`
	LatestTransaction *TransactionResponse `json:"latest_transaction,omitempty"`
}

func FromOrderSnapshot(s entities.OrderSnapshot) OrderSnapshotResponse {
	items := make([]RepairItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, FromRepairItem(it))
	}

	resp := OrderSnapshotResponse{
		Device:      FromDevice(s.Device),
		Items:       items,
		Subtotal:    s.Subtotal,
		Outstanding: s.Outstanding,
		Warranties:  FromWarrantyViews(s.Warranties),
	}
	if s.LatestTransaction != nil {
		t := FromTransaction(*s.LatestTransaction)
		resp.LatestTransaction = &t
	}
	return resp
}
