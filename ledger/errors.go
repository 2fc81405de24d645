package ledger

import "errors"

// Caller-facing conditions surfaced by the calculator. Controllers map these
// to HTTP statuses; nothing here is fatal.
var (
	ErrInvalidRange     = errors.New("invalid date range")
	ErrInvalidStayDates = errors.New("check_out_date must be after check_in_date")
	ErrBookingConflict  = errors.New("room is occupied in the selected dates")
	ErrPeriodLocked     = errors.New("month is closed")
)
