package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
	"hotel-ledger/models"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

type CreatePaymentInput struct {
	StayID            string
	PaidAt            string
	Method            string
	CustomMethodLabel string
	Amount            decimal.Decimal
	Comment           string
}

type UpdatePaymentInput struct {
	PaidAt            *string
	Method            *string
	CustomMethodLabel *string
	Amount            *decimal.Decimal
	Comment           *string
}

func (s *PaymentService) List(hotelID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("hotel_id = ?", hotelID).Order("paid_at DESC").Find(&payments).Error
	return payments, err
}

func (s *PaymentService) Create(user models.UserContext, in CreatePaymentInput) (*models.Payment, error) {
	var stay models.Stay
	if err := s.DB.Where("id = ? AND hotel_id = ?", in.StayID, user.HotelID).First(&stay).Error; err != nil {
		return nil, err
	}

	if !in.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	paidAt, err := parseWhen(in.PaidAt)
	if err != nil {
		return nil, err
	}
	if err := s.ensureDateEditable(user, paidAt); err != nil {
		return nil, err
	}

	method := in.Method
	if method == "" {
		method = "CASH"
	}

	payment := models.Payment{
		HotelID:           user.HotelID,
		StayID:            in.StayID,
		PaidAt:            paidAt,
		Method:            method,
		CustomMethodLabel: in.CustomMethodLabel,
		Amount:            in.Amount,
		Comment:           in.Comment,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) Update(user models.UserContext, id string, in UpdatePaymentInput) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, user.HotelID).First(&payment).Error; err != nil {
		return nil, err
	}

	if err := s.ensureDateEditable(user, payment.PaidAt); err != nil {
		return nil, err
	}

	if in.PaidAt != nil {
		paidAt, err := parseWhen(*in.PaidAt)
		if err != nil {
			return nil, err
		}
		if err := s.ensureDateEditable(user, paidAt); err != nil {
			return nil, err
		}
		payment.PaidAt = paidAt
	}
	if in.Method != nil {
		payment.Method = *in.Method
	}
	if in.CustomMethodLabel != nil {
		payment.CustomMethodLabel = *in.CustomMethodLabel
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, ErrNonPositiveAmount
		}
		payment.Amount = *in.Amount
	}
	if in.Comment != nil {
		payment.Comment = *in.Comment
	}

	if err := s.DB.Save(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) Delete(user models.UserContext, id string) error {
	var payment models.Payment
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, user.HotelID).First(&payment).Error; err != nil {
		return err
	}
	if err := s.ensureDateEditable(user, payment.PaidAt); err != nil {
		return err
	}
	return s.DB.Delete(&payment).Error
}

func (s *PaymentService) ensureDateEditable(user models.UserContext, date time.Time) error {
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
