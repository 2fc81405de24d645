package services

import (
	"errors"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
	"hotel-ledger/models"
)

// Domain conditions raised by services on top of the ledger's own taxonomy.
// Controllers map them to HTTP statuses with errors.Is.
var (
	ErrRoomInUse            = errors.New("room has booked or checked-in stays")
	ErrRoomNumberExists     = errors.New("room number already exists")
	ErrInvalidTransition    = errors.New("invalid stay status transition")
	ErrStayCheckedIn        = errors.New("cannot delete an active stay: guest is checked in")
	ErrStayHasPayments      = errors.New("cannot delete a stay with payments")
	ErrNonPositiveAmount    = errors.New("amount must be positive")
	ErrNegativePrice        = errors.New("price must not be negative")
	ErrSameRegister         = errors.New("cannot transfer to the same register")
	ErrEmailExists          = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRegistrationDisabled = errors.New("registration is disabled")
	ErrWeakPassword         = errors.New("password must be at least 6 characters")
	ErrInvalidRole          = errors.New("invalid role")
	ErrOwnerProtected       = errors.New("cannot modify the main admin")
	ErrSelfDelete           = errors.New("cannot delete yourself")
	ErrMethodExists         = errors.New("payment method already exists")
	ErrMethodNameRequired   = errors.New("payment method name is required")
	ErrInvalidTimezone      = errors.New("unknown timezone")
)

// closedMonths loads the closed month keys for a hotel, the input the
// ledger's lock predicates work on.
func closedMonths(db *gorm.DB, hotelID string) ([]string, error) {
	var months []string
	err := db.Model(&models.MonthClosing{}).
		Where("hotel_id = ?", hotelID).
		Pluck("month", &months).Error
	return months, err
}

// parseWhen parses an event timestamp. Accepts RFC3339 or a bare date;
// empty means now.
func parseWhen(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return ledger.ParseDate(s)
}

// isDuplicateKey reports a MySQL unique-constraint violation (1062).
func isDuplicateKey(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKeyViolation reports a MySQL FK failure (1452), raised when a
// referenced row vanished between the service's lookup and the insert.
func isForeignKeyViolation(err error) bool {
	var merr *mysql.MySQLError
	return errors.As(err, &merr) && merr.Number == 1452
}
