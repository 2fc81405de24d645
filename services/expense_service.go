package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
	"hotel-ledger/models"
)

type ExpenseService struct {
	DB *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{DB: db}
}

type CreateExpenseInput struct {
	SpentAt           string
	Category          string
	Method            string
	CustomMethodLabel string
	Amount            decimal.Decimal
	Comment           string
}

type UpdateExpenseInput struct {
	SpentAt           *string
	Category          *string
	Method            *string
	CustomMethodLabel *string
	Amount            *decimal.Decimal
	Comment           *string
}

func (s *ExpenseService) List(hotelID string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.DB.Where("hotel_id = ?", hotelID).Order("spent_at DESC").Find(&expenses).Error
	return expenses, err
}

func (s *ExpenseService) Create(user models.UserContext, in CreateExpenseInput) (*models.Expense, error) {
	if !in.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	spentAt, err := parseWhen(in.SpentAt)
	if err != nil {
		return nil, err
	}
	if err := s.ensureDateEditable(user, spentAt); err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = "OTHER"
	}
	method := in.Method
	if method == "" {
		method = "CASH"
	}

	expense := models.Expense{
		HotelID:           user.HotelID,
		SpentAt:           spentAt,
		Category:          category,
		Method:            method,
		CustomMethodLabel: in.CustomMethodLabel,
		Amount:            in.Amount,
		Comment:           in.Comment,
		CreatedByID:       user.UserID,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.DB.Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpenseService) Update(user models.UserContext, id string, in UpdateExpenseInput) (*models.Expense, error) {
	var expense models.Expense
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, user.HotelID).First(&expense).Error; err != nil {
		return nil, err
	}

	if err := s.ensureDateEditable(user, expense.SpentAt); err != nil {
		return nil, err
	}

	if in.SpentAt != nil {
		spentAt, err := parseWhen(*in.SpentAt)
		if err != nil {
			return nil, err
		}
		if err := s.ensureDateEditable(user, spentAt); err != nil {
			return nil, err
		}
		expense.SpentAt = spentAt
	}
	if in.Category != nil {
		expense.Category = *in.Category
	}
	if in.Method != nil {
		expense.Method = *in.Method
	}
	if in.CustomMethodLabel != nil {
		expense.CustomMethodLabel = *in.CustomMethodLabel
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, ErrNonPositiveAmount
		}
		expense.Amount = *in.Amount
	}
	if in.Comment != nil {
		expense.Comment = *in.Comment
	}

	if err := s.DB.Save(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpenseService) Delete(user models.UserContext, id string) error {
	var expense models.Expense
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, user.HotelID).First(&expense).Error; err != nil {
		return err
	}
	if err := s.ensureDateEditable(user, expense.SpentAt); err != nil {
		return err
	}
	return s.DB.Delete(&expense).Error
}

func (s *ExpenseService) ensureDateEditable(user models.UserContext, date time.Time) error {
	if user.IsAdmin() {
		return nil
	}
	closed, err := closedMonths(s.DB, user.HotelID)
	if err != nil {
		return err
	}
	if ledger.MonthLocked(closed, date) {
		return ledger.ErrPeriodLocked
	}
	return nil
}
