package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func room101Stay() Stay {
	// Room 101, 100/night, 2024-01-10 -> 2024-01-15, discount 50
	return Stay{
		ID:             "stay-1",
		RoomID:         "room-101",
		CheckIn:        date("2024-01-10"),
		CheckOut:       date("2024-01-15"),
		Status:         StatusBooked,
		PricePerNight:  dec("100"),
		WeeklyDiscount: dec("50"),
	}
}

func TestStayTotal(t *testing.T) {
	s := room101Stay()
	assert.True(t, StayTotal(s).Equal(dec("450")), "5 nights x 100 - 50")

	// linear in price: doubling the price doubles the nightly component
	doubled := s
	doubled.PricePerNight = dec("200")
	assert.True(t, StayTotal(doubled).Equal(dec("950")))

	// adjustments apply un-floored; a negative total is allowed
	negative := s
	negative.ManualAdjustment = dec("-500")
	assert.True(t, StayTotal(negative).Equal(dec("-50")))

	// zero-night stay never errors
	zero := s
	zero.CheckOut = zero.CheckIn
	assert.True(t, StayTotal(zero).Equal(dec("-50")))
}

func TestOutstandingBalance(t *testing.T) {
	s := room101Stay()
	payments := []Payment{
		{StayID: s.ID, Amount: dec("200")},
		{StayID: s.ID, Amount: dec("100")},
	}
	assert.True(t, OutstandingBalance(s, payments).Equal(dec("150")))
	assert.True(t, OutstandingBalance(s, nil).Equal(dec("450")))
}

func TestHasOverlap(t *testing.T) {
	existing := []Stay{room101Stay()}

	// second stay inside the first one's span conflicts
	conflict := HasOverlap(existing, "room-101", date("2024-01-12"), date("2024-01-14"), StatusBooked, "")
	assert.True(t, conflict)

	// a different room never conflicts
	assert.False(t, HasOverlap(existing, "room-102", date("2024-01-12"), date("2024-01-14"), StatusBooked, ""))

	// back-to-back stays share no night
	assert.False(t, HasOverlap(existing, "room-101", date("2024-01-15"), date("2024-01-20"), StatusBooked, ""))
	assert.False(t, HasOverlap(existing, "room-101", date("2024-01-05"), date("2024-01-10"), StatusBooked, ""))

	// cancelling never conflicts
	assert.False(t, HasOverlap(existing, "room-101", date("2024-01-12"), date("2024-01-14"), StatusCancelled, ""))

	// a cancelled prior stay frees the room
	cancelled := room101Stay()
	cancelled.Status = StatusCancelled
	assert.False(t, HasOverlap([]Stay{cancelled}, "room-101", date("2024-01-12"), date("2024-01-14"), StatusBooked, ""))

	// updating a stay excludes its own prior record
	assert.False(t, HasOverlap(existing, "room-101", date("2024-01-11"), date("2024-01-16"), StatusBooked, "stay-1"))
}

func TestValidTransition(t *testing.T) {
	assert.True(t, ValidTransition(StatusBooked, StatusCheckedIn))
	assert.True(t, ValidTransition(StatusCheckedIn, StatusCheckedOut))
	assert.True(t, ValidTransition(StatusBooked, StatusCancelled))
	assert.True(t, ValidTransition(StatusCheckedIn, StatusCancelled))
	assert.True(t, ValidTransition(StatusCheckedOut, StatusCheckedOut))

	// no resurrection from terminal states
	assert.False(t, ValidTransition(StatusCheckedOut, StatusCheckedIn))
	assert.False(t, ValidTransition(StatusCancelled, StatusBooked))
	assert.False(t, ValidTransition(StatusCheckedOut, StatusCancelled))
	assert.False(t, ValidTransition(StatusBooked, StatusCheckedOut))
}
