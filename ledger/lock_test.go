package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthLocked(t *testing.T) {
	closed := []string{"2024-01", "2024-03"}

	assert.True(t, MonthLocked(closed, date("2024-01-20")))
	assert.True(t, MonthLocked(closed, date("2024-01-01")))
	assert.False(t, MonthLocked(closed, date("2024-02-15")))
	assert.False(t, MonthLocked(nil, date("2024-01-20")))
}

func TestRangeLocked(t *testing.T) {
	closed := []string{"2024-02"}

	// stay spanning January into February touches the closed month
	assert.True(t, RangeLocked(closed, date("2024-01-28"), date("2024-02-03")))
	assert.False(t, RangeLocked(closed, date("2024-01-10"), date("2024-01-15")))
	// the end is exclusive: a stay checking out on Feb 1 spends no night in
	// February and is not locked by a February closing
	assert.False(t, RangeLocked(closed, date("2024-01-15"), date("2024-02-01")))
	assert.True(t, RangeLocked(closed, date("2024-02-01"), date("2024-03-01")))
	assert.False(t, RangeLocked(nil, date("2024-02-01"), date("2024-03-01")))
}
