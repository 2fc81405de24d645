package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshotInvalidRange(t *testing.T) {
	_, err := BuildSnapshot(ReportInput{From: date("2024-02-01"), To: date("2024-01-01")})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestBuildSnapshotStableShape(t *testing.T) {
	snap, err := BuildSnapshot(ReportInput{From: date("2024-01-01"), To: date("2024-01-31")})
	require.NoError(t, err)

	// the four built-in methods and six categories are present even at zero
	for _, m := range PaymentMethods {
		v, ok := snap.RevenueByMethod[m]
		require.True(t, ok, m)
		assert.True(t, v.IsZero())
	}
	for _, c := range ExpenseCategories {
		v, ok := snap.ExpensesByCategory[c]
		require.True(t, ok, c)
		assert.True(t, v.IsZero())
	}
	assert.Equal(t, 0, snap.SoldNights)
	assert.Equal(t, 0, snap.AvailableNights)
	assert.Equal(t, float64(0), snap.OccupancyRate)
	assert.True(t, snap.ADR.IsZero())
	assert.True(t, snap.RevPAR.IsZero())
}

func TestBuildSnapshotFullMonth(t *testing.T) {
	// one active room, the room-101 stay fully inside January
	snap, err := BuildSnapshot(ReportInput{
		From:        date("2024-01-01"),
		To:          date("2024-01-31"),
		Stays:       []Stay{room101Stay()},
		ActiveRooms: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, snap.SoldNights)
	assert.Equal(t, 31, snap.AvailableNights)
	assert.True(t, snap.TotalRoomRevenue.Equal(dec("450")))
	assert.InDelta(t, 16.13, snap.OccupancyRate, 0.01)
	assert.True(t, snap.ADR.Equal(dec("90")))
	assert.True(t, snap.RevPAR.Equal(dec("450").Div(dec("31"))))
}

func TestBuildSnapshotPartialOverlapProrates(t *testing.T) {
	// window starts mid-stay: 3 of 5 nights are in range, revenue prorates
	// from the whole total (450 * 3/5 = 270), not from the nightly price
	snap, err := BuildSnapshot(ReportInput{
		From:        date("2024-01-12"),
		To:          date("2024-01-31"),
		Stays:       []Stay{room101Stay()},
		ActiveRooms: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, snap.SoldNights)
	assert.Equal(t, 20, snap.AvailableNights)
	assert.True(t, snap.TotalRoomRevenue.Equal(dec("270")))
	assert.True(t, snap.ADR.Equal(dec("90")))
}

func TestBuildSnapshotSkipsCancelledAndZeroNight(t *testing.T) {
	cancelled := room101Stay()
	cancelled.Status = StatusCancelled

	zeroNight := room101Stay()
	zeroNight.ID = "stay-2"
	zeroNight.CheckOut = zeroNight.CheckIn

	snap, err := BuildSnapshot(ReportInput{
		From:        date("2024-01-01"),
		To:          date("2024-01-31"),
		Stays:       []Stay{cancelled, zeroNight},
		ActiveRooms: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, snap.SoldNights)
	assert.True(t, snap.TotalRoomRevenue.IsZero())
}

func TestBuildSnapshotMoneyBuckets(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)
	feb1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	snap, err := BuildSnapshot(ReportInput{
		From: date("2024-01-01"),
		To:   date("2024-01-31"),
		Payments: []Payment{
			{PaidAt: jan10, Method: "CASH", Amount: dec("300")},
			{PaidAt: jan10, Method: "CASH", Amount: dec("150")},
			{PaidAt: jan10, Method: MethodOther, CustomLabel: "Terminal 2", Amount: dec("80")},
			{PaidAt: feb1, Method: "CARD", Amount: dec("999")}, // outside window
		},
		Expenses: []Expense{
			{SpentAt: jan10, Category: "SALARY", Amount: dec("200")},
			{SpentAt: jan10, Category: "REPAIR", Amount: dec("30")},
			{SpentAt: feb1, Category: "OTHER", Amount: dec("999")},
		},
	})
	require.NoError(t, err)

	assert.True(t, snap.RevenueByMethod["CASH"].Equal(dec("450")))
	assert.True(t, snap.RevenueByMethod["Terminal 2"].Equal(dec("80")))
	assert.True(t, snap.RevenueByMethod["CARD"].IsZero())
	assert.True(t, snap.ExpensesByCategory["SALARY"].Equal(dec("200")))
	assert.True(t, snap.Profit.Equal(dec("300")), "530 revenue - 230 expenses")
}

func TestRegisterBalances(t *testing.T) {
	now := date("2024-01-10")
	balances := RegisterBalances(
		[]Payment{
			{PaidAt: now, Method: "CASH", Amount: dec("500")},
			{PaidAt: now, Method: MethodOther, CustomLabel: "Safe", Amount: dec("100")},
		},
		[]Expense{
			{SpentAt: now, Method: "CASH", Amount: dec("120")},
		},
		[]Transfer{
			{TransferredAt: now, FromMethod: "CASH", ToMethod: "CARD", Amount: dec("200")},
		},
	)

	assert.True(t, balances["CASH"].Equal(dec("180")), "500 - 120 - 200")
	assert.True(t, balances["CARD"].Equal(dec("200")))
	assert.True(t, balances["Safe"].Equal(dec("100")))
	assert.True(t, balances["PAYME"].IsZero())
	assert.True(t, balances["CLICK"].IsZero())
}
