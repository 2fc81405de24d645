package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
	"hotel-ledger/models"
)

type TransferService struct {
	DB *gorm.DB
}

func NewTransferService(db *gorm.DB) *TransferService {
	return &TransferService{DB: db}
}

type CreateTransferInput struct {
	TransferredAt string
	FromMethod    string
	ToMethod      string
	Amount        decimal.Decimal
	Comment       string
}

type UpdateTransferInput struct {
	TransferredAt *string
	FromMethod    *string
	ToMethod      *string
	Amount        *decimal.Decimal
	Comment       *string
}

func (s *TransferService) List(hotelID string) ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := s.DB.Where("hotel_id = ?", hotelID).Order("transferred_at DESC").Find(&transfers).Error
	return transfers, err
}

func (s *TransferService) Create(user models.UserContext, in CreateTransferInput) (*models.Transfer, error) {
	from := strings.TrimSpace(in.FromMethod)
	to := strings.TrimSpace(in.ToMethod)
	if from == to {
		return nil, ErrSameRegister
	}
	if !in.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	transferredAt, err := parseWhen(in.TransferredAt)
	if err != nil {
		return nil, err
	}
	if err := s.ensureDateEditable(user, transferredAt); err != nil {
		return nil, err
	}

	transfer := models.Transfer{
		HotelID:       user.HotelID,
		TransferredAt: transferredAt,
		FromMethod:    from,
		ToMethod:      to,
		Amount:        in.Amount,
		Comment:       in.Comment,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.DB.Create(&transfer).Error; err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (s *TransferService) Update(user models.UserContext, id string, in UpdateTransferInput) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, user.HotelID).First(&transfer).Error; err != nil {
		return nil, err
	}

	if err := s.ensureDateEditable(user, transfer.TransferredAt); err != nil {
		return nil, err
	}

	if in.TransferredAt != nil {
		transferredAt, err := parseWhen(*in.TransferredAt)
		if err != nil {
			return nil, err
		}
		if err := s.ensureDateEditable(user, transferredAt); err != nil {
			return nil, err
		}
		transfer.TransferredAt = transferredAt
	}
	if in.FromMethod != nil {
		transfer.FromMethod = strings.TrimSpace(*in.FromMethod)
	}
	if in.ToMethod != nil {
		transfer.ToMethod = strings.TrimSpace(*in.ToMethod)
	}
	if transfer.FromMethod == transfer.ToMethod {
		return nil, ErrSameRegister
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, ErrNonPositiveAmount
		}
		transfer.Amount = *in.Amount
	}
	if in.Comment != nil {
		transfer.Comment = *in.Comment
	}

	if err := s.DB.Save(&transfer).Error; err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (s *TransferService) Delete(user models.UserContext, id string) error {
	var transfer models.Transfer
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, user.HotelID).First(&transfer).Error; err != nil {
		return err
	}
	if err := s.ensureDateEditable(user, transfer.TransferredAt); err != nil {
		return err
	}
	return s.DB.Delete(&transfer).Error
}

func (s *TransferService) ensureDateEditable(user models.UserContext, date time.Time) error {
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
