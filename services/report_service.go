package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
	"hotel-ledger/models"
)

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// Build loads the hotel's collections for [from, to] and hands them to the
// calculator. from/to are inclusive YYYY-MM-DD strings.
func (s *ReportService) Build(hotelID, from, to string) (ledger.Snapshot, error) {
	fromDate, err := ledger.ParseDate(from)
	if err != nil {
		return ledger.Snapshot{}, ledger.ErrInvalidRange
	}
	toDate, err := ledger.ParseDate(to)
	if err != nil {
		return ledger.Snapshot{}, ledger.ErrInvalidRange
	}
	if ledger.DayNumber(toDate) < ledger.DayNumber(fromDate) {
		return ledger.Snapshot{}, ledger.ErrInvalidRange
	}

	rangeEndExclusive := ledger.AddDays(toDate, 1)

	var payments []models.Payment
	if err := s.DB.Where("hotel_id = ? AND paid_at >= ? AND paid_at < ?", hotelID, fromDate, rangeEndExclusive).
		Find(&payments).Error; err != nil {
		return ledger.Snapshot{}, err
	}

	var expenses []models.Expense
	if err := s.DB.Where("hotel_id = ? AND spent_at >= ? AND spent_at < ?", hotelID, fromDate, rangeEndExclusive).
		Find(&expenses).Error; err != nil {
		return ledger.Snapshot{}, err
	}

	var stays []models.Stay
	if err := s.DB.Where("hotel_id = ? AND status <> ? AND check_in_date < ? AND check_out_date > ?",
		hotelID, ledger.StatusCancelled, rangeEndExclusive, fromDate).
		Find(&stays).Error; err != nil {
		return ledger.Snapshot{}, err
	}

	var activeRooms int64
	if err := s.DB.Model(&models.Room{}).Where("hotel_id = ? AND active = ?", hotelID, true).
		Count(&activeRooms).Error; err != nil {
		return ledger.Snapshot{}, err
	}

	in := ledger.ReportInput{
		From:        fromDate,
		To:          toDate,
		ActiveRooms: int(activeRooms),
	}
	for _, p := range payments {
		in.Payments = append(in.Payments, p.Entry())
	}
	for _, e := range expenses {
		in.Expenses = append(in.Expenses, e.Entry())
	}
	for _, st := range stays {
		in.Stays = append(in.Stays, st.Terms())
	}

	return ledger.BuildSnapshot(in)
}

// Balances folds the hotel's whole payment, expense and transfer history
// into per-register balances.
func (s *ReportService) Balances(hotelID string) (map[string]decimal.Decimal, error) {
	var payments []models.Payment
	if err := s.DB.Where("hotel_id = ?", hotelID).Find(&payments).Error; err != nil {
		return nil, err
	}
	var expenses []models.Expense
	if err := s.DB.Where("hotel_id = ?", hotelID).Find(&expenses).Error; err != nil {
		return nil, err
	}
	var transfers []models.Transfer
	if err := s.DB.Where("hotel_id = ?", hotelID).Find(&transfers).Error; err != nil {
		return nil, err
	}

	lp := make([]ledger.Payment, 0, len(payments))
	for _, p := range payments {
		lp = append(lp, p.Entry())
	}
	le := make([]ledger.Expense, 0, len(expenses))
	for _, e := range expenses {
		le = append(le, e.Entry())
	}
	lt := make([]ledger.Transfer, 0, len(transfers))
	for _, t := range transfers {
		lt = append(lt, t.Entry())
	}

	return ledger.RegisterBalances(lp, le, lt), nil
}
