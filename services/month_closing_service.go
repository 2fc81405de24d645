package services

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
	"hotel-ledger/models"
)

type MonthClosingService struct {
	DB      *gorm.DB
	Reports *ReportService
}

func NewMonthClosingService(db *gorm.DB, reports *ReportService) *MonthClosingService {
	return &MonthClosingService{DB: db, Reports: reports}
}

func (s *MonthClosingService) List(hotelID string) ([]models.MonthClosing, error) {
	var closings []models.MonthClosing
	err := s.DB.Where("hotel_id = ?", hotelID).Order("month DESC").Find(&closings).Error
	return closings, err
}

// ClosePrevious freezes the prior calendar month's report into a closing.
// Closing an already-closed month returns the existing snapshot untouched;
// the frozen totals are never recomputed.
func (s *MonthClosingService) ClosePrevious(hotelID string) (*models.MonthClosing, bool, error) {
	now := time.Now().UTC()
	currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previousMonthStart := currentMonthStart.AddDate(0, -1, 0)
	previousMonthEnd := ledger.AddDays(currentMonthStart, -1)
	monthKey := ledger.MonthKey(previousMonthStart)

	var existing models.MonthClosing
	err := s.DB.Where("hotel_id = ? AND month = ?", hotelID, monthKey).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	totals, err := s.Reports.Build(hotelID, ledger.FormatDate(previousMonthStart), ledger.FormatDate(previousMonthEnd))
	if err != nil {
		return nil, false, err
	}
	raw, err := json.Marshal(totals)
	if err != nil {
		return nil, false, err
	}

	closing := models.MonthClosing{
		HotelID:    hotelID,
		Month:      monthKey,
		ClosedAt:   now,
		TotalsJSON: datatypes.JSON(raw),
	}
	if err := s.DB.Create(&closing).Error; err != nil {
		// Lost a race with a concurrent close; the unique key guarantees one
		// snapshot per month, so return the winner's.
		if isDuplicateKey(err) {
			var winner models.MonthClosing
			if readErr := s.DB.Where("hotel_id = ? AND month = ?", hotelID, monthKey).First(&winner).Error; readErr == nil {
				return &winner, false, nil
			}
		}
		return nil, false, err
	}
	return &closing, true, nil
}

// Reopen removes a month's closing, lifting the edit lock and discarding the
// frozen snapshot.
func (s *MonthClosingService) Reopen(hotelID, month string) error {
	result := s.DB.Where("hotel_id = ? AND month = ?", hotelID, month).Delete(&models.MonthClosing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
