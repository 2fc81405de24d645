package ledger

import "time"

// Month-closing lock policy. A closed month freezes every payment, expense,
// transfer and stay whose relevant date falls inside it, for non-admin
// callers; the admin role bypasses the lock entirely. Callers load the closed
// month keys for a hotel and ask the two predicates below before committing a
// mutation.

// MonthLocked reports whether the month containing date is closed.
func MonthLocked(closedMonths []string, date time.Time) bool {
	key := MonthKey(date)
	for _, m := range closedMonths {
		if m == key {
			return true
		}
	}
	return false
}

// RangeLocked reports whether any month touched by [start, endExclusive) is
// closed. Stays check their whole check-in/check-out span through this.
func RangeLocked(closedMonths []string, start, endExclusive time.Time) bool {
	if len(closedMonths) == 0 {
		return false
	}
	closed := make(map[string]struct{}, len(closedMonths))
	for _, m := range closedMonths {
		closed[m] = struct{}{}
	}
	for _, key := range MonthKeysInRange(start, endExclusive) {
		if _, ok := closed[key]; ok {
			return true
		}
	}
	return false
}
