package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-ledger/ledger"
	"hotel-ledger/models"
)

type StayService struct {
	DB *gorm.DB
}

func NewStayService(db *gorm.DB) *StayService {
	return &StayService{DB: db}
}

type CreateStayInput struct {
	RoomID           string
	GuestName        string
	GuestPhone       string
	CheckInDate      string
	CheckOutDate     string
	Status           string
	PricePerNight    decimal.Decimal
	WeeklyDiscount   decimal.Decimal
	ManualAdjustment decimal.Decimal
	DepositExpected  decimal.Decimal
	Comment          string
}

// UpdateStayInput carries only the fields the caller wants to change.
type UpdateStayInput struct {
	RoomID           *string
	GuestName        *string
	GuestPhone       *string
	CheckInDate      *string
	CheckOutDate     *string
	Status           *string
	PricePerNight    *decimal.Decimal
	WeeklyDiscount   *decimal.Decimal
	ManualAdjustment *decimal.Decimal
	DepositExpected  *decimal.Decimal
	Comment          *string
}

// StayWithTotals pairs a stay with its computed financials so every consumer
// gets the server-side numbers instead of recomputing them.
type StayWithTotals struct {
	models.Stay
	TotalDue    decimal.Decimal `json:"total_due"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Nights      int             `json:"nights"`
}

func (s *StayService) List(hotelID string) ([]StayWithTotals, error) {
	var stays []models.Stay
	if err := s.DB.Where("hotel_id = ?", hotelID).Order("check_in_date DESC").Find(&stays).Error; err != nil {
		return nil, err
	}

	var payments []models.Payment
	if err := s.DB.Where("hotel_id = ?", hotelID).Find(&payments).Error; err != nil {
		return nil, err
	}
	paidByStay := make(map[string]decimal.Decimal, len(stays))
	for _, p := range payments {
		paidByStay[p.StayID] = paidByStay[p.StayID].Add(p.Amount)
	}

	result := make([]StayWithTotals, 0, len(stays))
	for _, stay := range stays {
		total := ledger.StayTotal(stay.Terms())
		paid := paidByStay[stay.ID]
		result = append(result, StayWithTotals{
			Stay:        stay,
			TotalDue:    total,
			Paid:        paid,
			Outstanding: total.Sub(paid),
			Nights:      ledger.Nights(stay.CheckInDate, stay.CheckOutDate),
		})
	}
	return result, nil
}

func (s *StayService) Get(hotelID, id string) (*models.Stay, error) {
	var stay models.Stay
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, hotelID).First(&stay).Error; err != nil {
		return nil, err
	}
	return &stay, nil
}

func (s *StayService) Create(user models.UserContext, in CreateStayInput) (*models.Stay, error) {
	var room models.Room
	if err := s.DB.Where("id = ? AND hotel_id = ?", in.RoomID, user.HotelID).First(&room).Error; err != nil {
		return nil, err
	}

	checkIn, checkOut, err := parseStayDates(in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = ledger.StatusBooked
	}
	if !knownStatus(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.ensureRangeEditable(user, checkIn, checkOut); err != nil {
		return nil, err
	}

	stay := models.Stay{
		HotelID:                user.HotelID,
		RoomID:                 in.RoomID,
		GuestName:              in.GuestName,
		GuestPhone:             in.GuestPhone,
		CheckInDate:            checkIn,
		CheckOutDate:           checkOut,
		Status:                 status,
		PricePerNight:          in.PricePerNight,
		WeeklyDiscountAmount:   in.WeeklyDiscount,
		ManualAdjustmentAmount: in.ManualAdjustment,
		DepositExpected:        in.DepositExpected,
		Comment:                in.Comment,
		CreatedAt:              time.Now().UTC(),
	}

	// The overlap check and the insert must see the same data, so both run
	// inside one transaction with the room's stays locked.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		others, err := lockRoomStays(tx, user.HotelID, in.RoomID)
		if err != nil {
			return err
		}
		if ledger.HasOverlap(others, in.RoomID, checkIn, checkOut, status, "") {
			return ledger.ErrBookingConflict
		}
		return tx.Create(&stay).Error
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &stay, nil
}

func (s *StayService) Update(user models.UserContext, id string, in UpdateStayInput) (*models.Stay, error) {
	var existing models.Stay
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, user.HotelID).First(&existing).Error; err != nil {
		return nil, err
	}

	// The record's current span must be editable before anything else.
	if err := s.ensureRangeEditable(user, existing.CheckInDate, existing.CheckOutDate); err != nil {
		return nil, err
	}

	next := existing
	if in.RoomID != nil {
		var room models.Room
		if err := s.DB.Where("id = ? AND hotel_id = ?", *in.RoomID, user.HotelID).First(&room).Error; err != nil {
			return nil, err
		}
		next.RoomID = *in.RoomID
	}
	if in.GuestName != nil {
		next.GuestName = *in.GuestName
	}
	if in.GuestPhone != nil {
		next.GuestPhone = *in.GuestPhone
	}
	if in.CheckInDate != nil || in.CheckOutDate != nil {
		inStr := ledger.FormatDate(existing.CheckInDate)
		outStr := ledger.FormatDate(existing.CheckOutDate)
		if in.CheckInDate != nil {
			inStr = *in.CheckInDate
		}
		if in.CheckOutDate != nil {
			outStr = *in.CheckOutDate
		}
		checkIn, checkOut, err := parseStayDates(inStr, outStr)
		if err != nil {
			return nil, err
		}
		next.CheckInDate, next.CheckOutDate = checkIn, checkOut
	}
	if in.Status != nil {
		if !knownStatus(*in.Status) || !ledger.ValidTransition(existing.Status, *in.Status) {
			return nil, ErrInvalidTransition
		}
		next.Status = *in.Status
	}
	if in.PricePerNight != nil {
		next.PricePerNight = *in.PricePerNight
	}
	if in.WeeklyDiscount != nil {
		next.WeeklyDiscountAmount = *in.WeeklyDiscount
	}
	if in.ManualAdjustment != nil {
		next.ManualAdjustmentAmount = *in.ManualAdjustment
	}
	if in.DepositExpected != nil {
		next.DepositExpected = *in.DepositExpected
	}
	if in.Comment != nil {
		next.Comment = *in.Comment
	}

	// And the proposed span too.
	if err := s.ensureRangeEditable(user, next.CheckInDate, next.CheckOutDate); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		others, err := lockRoomStays(tx, user.HotelID, next.RoomID)
		if err != nil {
			return err
		}
		if ledger.HasOverlap(others, next.RoomID, next.CheckInDate, next.CheckOutDate, next.Status, existing.ID) {
			return ledger.ErrBookingConflict
		}
		return tx.Save(&next).Error
	})
	if err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *StayService) Delete(user models.UserContext, id string) error {
	var stay models.Stay
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, user.HotelID).First(&stay).Error; err != nil {
		return err
	}

	if stay.Status == ledger.StatusCheckedIn {
		return ErrStayCheckedIn
	}
	var paymentCount int64
	if err := s.DB.Model(&models.Payment{}).Where("stay_id = ?", id).Count(&paymentCount).Error; err != nil {
		return err
	}
	if paymentCount > 0 {
		return ErrStayHasPayments
	}

	if err := s.ensureRangeEditable(user, stay.CheckInDate, stay.CheckOutDate); err != nil {
		return err
	}

	return s.DB.Delete(&stay).Error
}

func (s *StayService) ensureRangeEditable(user models.UserContext, checkIn, checkOut time.Time) error {
	if user.IsAdmin() {
		return nil
	}
	closed, err := closedMonths(s.DB, user.HotelID)
	if err != nil {
		return err
	}
	if ledger.RangeLocked(closed, checkIn, checkOut) {
		return ledger.ErrPeriodLocked
	}
	return nil
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := ledger.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ledger.ErrInvalidStayDates
	}
	out, err := ledger.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ledger.ErrInvalidStayDates
	}
	if ledger.Nights(in, out) <= 0 {
		return time.Time{}, time.Time{}, ledger.ErrInvalidStayDates
	}
	return in, out, nil
}

func knownStatus(status string) bool {
	switch status {
	case ledger.StatusBooked, ledger.StatusCheckedIn, ledger.StatusCheckedOut, ledger.StatusCancelled:
		return true
	}
	return false
}

// lockRoomStays loads the room's non-cancelled stays under FOR UPDATE so
// concurrent bookings for the same room serialize on the conflict check.
func lockRoomStays(tx *gorm.DB, hotelID, roomID string) ([]ledger.Stay, error) {
	var rows []models.Stay
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("hotel_id = ? AND room_id = ? AND status <> ?", hotelID, roomID, ledger.StatusCancelled).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	stays := make([]ledger.Stay, 0, len(rows))
	for _, r := range rows {
		stays = append(stays, r.Terms())
	}
	return stays, nil
}

// IsNotFound is a convenience wrapper controllers use when mapping errors.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
