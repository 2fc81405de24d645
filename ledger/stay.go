package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stay statuses. BOOKED moves to CHECKED_IN then CHECKED_OUT; BOOKED and
// CHECKED_IN may move to CANCELLED. Terminal states never go back.
const (
	StatusBooked     = "BOOKED"
	StatusCheckedIn  = "CHECKED_IN"
	StatusCheckedOut = "CHECKED_OUT"
	StatusCancelled  = "CANCELLED"
)

// ValidTransition reports whether a stay may move from one status to another.
// Keeping the current status is always allowed.
func ValidTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusBooked:
		return to == StatusCheckedIn || to == StatusCancelled
	case StatusCheckedIn:
		return to == StatusCheckedOut || to == StatusCancelled
	default:
		return false
	}
}

// Stay carries the fields of a booking that the calculator needs. Callers map
// their storage records into this shape.
type Stay struct {
	ID               string
	RoomID           string
	CheckIn          time.Time
	CheckOut         time.Time
	Status           string
	PricePerNight    decimal.Decimal
	WeeklyDiscount   decimal.Decimal
	ManualAdjustment decimal.Decimal
}

// StayNights is the stay's own night count.
func (s Stay) StayNights() int {
	return Nights(s.CheckIn, s.CheckOut)
}

// StayTotal computes nights × price − discount + adjustment. There is no
// floor at zero: an overcorrecting adjustment may produce a negative total,
// which the operator sees as a warning, not an error.
func StayTotal(s Stay) decimal.Decimal {
	nightly := s.PricePerNight.Mul(decimal.NewFromInt(int64(s.StayNights())))
	return nightly.Sub(s.WeeklyDiscount).Add(s.ManualAdjustment)
}

// OutstandingBalance is the stay total minus everything already paid on it.
func OutstandingBalance(s Stay, payments []Payment) decimal.Decimal {
	balance := StayTotal(s)
	for _, p := range payments {
		balance = balance.Sub(p.Amount)
	}
	return balance
}

// HasOverlap reports whether any other non-cancelled stay in stays occupies
// roomID during [checkIn, checkOut). A stay being saved as CANCELLED never
// conflicts. excludeID skips the stay's own prior record on update.
//
// This check alone is not race-safe across concurrent writers: the caller
// must run it and the subsequent write inside one transaction.
func HasOverlap(stays []Stay, roomID string, checkIn, checkOut time.Time, status string, excludeID string) bool {
	if status == StatusCancelled {
		return false
	}
	for _, other := range stays {
		if other.ID == excludeID || other.RoomID != roomID || other.Status == StatusCancelled {
			continue
		}
		if OverlapNights(checkIn, checkOut, other.CheckIn, other.CheckOut) > 0 {
			return true
		}
	}
	return false
}
