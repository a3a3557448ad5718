package request

// IssueWarrantyRequest opens a coverage window for a device. When
// repair_item_id is set and warranty_months is omitted, the item's
// configured duration applies.
type IssueWarrantyRequest struct {
	RepairItemID   string `json:"repair_item_id"`
	WarrantyMonths int    `json:"warranty_months" binding:"gte=0"`
}
