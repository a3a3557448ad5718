package entities

import "time"

// WarrantyStatus is derived from the coverage window, never stored: a
// persisted status column would go stale the instant the window closes.
type WarrantyStatus string

const (
	WarrantyStatusActive  WarrantyStatus = "ACTIVE"
	WarrantyStatusExpired WarrantyStatus = "EXPIRED"
)

// WarrantyCoverage classifies what a warranty applies to, for reporting.
type WarrantyCoverage string

const (
	// CoverageDevice is general device coverage, not tied to a single repair.
	CoverageDevice WarrantyCoverage = "GENERAL_DEVICE"
	// CoverageRepairItem is coverage narrowed to one repair item.
	CoverageRepairItem WarrantyCoverage = "LINKED_REPAIR_ITEM"
)

// Warranty is a coverage window tied to a device, optionally narrowed to one
// repair item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (device_id-index): device_id
type Warranty struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"device_id"`
	RepairItemID string    `json:"repair_item_id,omitempty"`
	Code         string    `json:"code"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// StatusAt reports whether the warranty is still live at the given instant.
// The boundary instant counts as active: endDate >= now is ACTIVE.
func (w Warranty) StatusAt(now time.Time) WarrantyStatus {
	if w.EndDate.Before(now) {
		return WarrantyStatusExpired
	}
	return WarrantyStatusActive
}

// Coverage reports whether the warranty covers the whole device or one
// specific repair item.
func (w Warranty) Coverage() WarrantyCoverage {
	if w.RepairItemID != "" {
		return CoverageRepairItem
	}
	return CoverageDevice
}

// WarrantyEndDate adds a number of calendar months to a start date.
// Day-of-month overflow clamps to the end of the target month
// (Jan 31 + 1 month = Feb 29 in a leap year, Feb 28 otherwise), instead of
// the normalization time.AddDate would do.
func WarrantyEndDate(start time.Time, months int) time.Time {
	y, m, d := start.Date()
	hh, mm, ss := start.Clock()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, start.Location())
	// Day 0 of the following month is the last day of the target month.
	lastDay := time.Date(firstOfTarget.Year(), firstOfTarget.Month()+1, 0, 0, 0, 0, 0, start.Location()).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, hh, mm, ss, start.Nanosecond(), start.Location())
}
