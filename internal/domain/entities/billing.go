package entities

// Billing calculators. Amounts are integral currency units (whole đồng), so
// plain int64 arithmetic is exact. All three functions are pure and total
// over non-negative input; they read their arguments and touch nothing else,
// so they are safe to call concurrently against immutable snapshots.

// Subtotal sums the cost of every repair item attached to a device.
// An empty or nil list yields 0.
func Subtotal(items []RepairItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Cost
	}
	return sum
}

// FinalAmount is the payable amount of a transaction: total minus discount,
// floored at zero. Non-negative inputs are a precondition enforced at the
// validation boundary; the clamp only defends against an invalid combination
// slipping through.
func FinalAmount(total, discount int64) int64 {
	if discount >= total {
		return 0
	}
	return total - discount
}

// Outstanding is the remaining amount owed on a device: subtotal minus what
// was already paid, floored at zero.
func Outstanding(subtotal, paid int64) int64 {
	if paid >= subtotal {
		return 0
	}
	return subtotal - paid
}
