package request

// AddRepairItemRequest attaches one billable service/part to a device.
// Cost is in integral currency units.
type AddRepairItemRequest struct {
	ServiceID      string `json:"service_id"`
	ServiceName    string `json:"service_name" binding:"required"`
	PartUsed       string `json:"part_used"`
	Cost           int64  `json:"cost" binding:"gte=0"`
	WarrantyMonths int    `json:"warranty_months" binding:"gte=0"`
	Description    string `json:"description"`
}
