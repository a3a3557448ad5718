package entities

import "time"

// WarrantyView pairs a warranty with its status and coverage at the snapshot
// instant.
type WarrantyView struct {
	Warranty Warranty         `json:"warranty"`
	Status   WarrantyStatus   `json:"status"`
	Coverage WarrantyCoverage `json:"coverage"`
}

// OrderSnapshot is the consistent read-model for billing and warranty
// screens: a device's derived numbers plus pass-through references to its
// attached records. It holds no state of its own; building it twice over the
// same inputs yields identical results.
type OrderSnapshot struct {
	Device            Device         `json:"device"`
	Items             []RepairItem   `json:"items"`
	Subtotal          int64          `json:"subtotal"`
	Outstanding       int64          `json:"outstanding"`
	Warranties        []WarrantyView `json:"warranties"`
	LatestTransaction *Transaction   `json:"latest_transaction,omitempty"`
}

// BuildOrderSnapshot combines a freshly fetched device snapshot into the
// derived view. Paid amount is the final amount of the most recent
// transaction, 0 when none exists. Absent collections yield zero/empty
// defaults rather than errors.
func BuildOrderSnapshot(device Device, items []RepairItem, transactions []Transaction, warranties []Warranty, now time.Time) OrderSnapshot {
	subtotal := Subtotal(items)

	latest := latestTransaction(transactions)
	var paid int64
	if latest != nil {
		paid = latest.FinalAmount
	}

	views := make([]WarrantyView, 0, len(warranties))
	for _, w := range warranties {
		views = append(views, WarrantyView{
			Warranty: w,
			Status:   w.StatusAt(now),
			Coverage: w.Coverage(),
		})
	}

	return OrderSnapshot{
		Device:            device,
		Items:             items,
		Subtotal:          subtotal,
		Outstanding:       Outstanding(subtotal, paid),
		Warranties:        views,
		LatestTransaction: latest,
	}
}

func latestTransaction(transactions []Transaction) *Transaction {
	var latest *Transaction
	for i := range transactions {
		t := &transactions[i]
		if latest == nil || t.CreatedAt.After(latest.CreatedAt) {
			latest = t
		}
	}
	if latest == nil {
		return nil
	}
	cp := *latest
	return &cp
}
