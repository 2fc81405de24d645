package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
)

type Expense struct {
	ID                string          `gorm:"primaryKey;size:36" json:"id"`
	HotelID           string          `gorm:"size:36;index" json:"hotel_id"`
	SpentAt           time.Time       `gorm:"index" json:"spent_at"`
	Category          string          `gorm:"size:20;default:OTHER" json:"category"`
	Method            string          `gorm:"size:20;default:CASH" json:"method"`
	CustomMethodLabel string          `gorm:"size:100" json:"custom_method_label"`
	Amount            decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"amount"`
	Comment           string          `gorm:"type:text" json:"comment"`
	CreatedByID       string          `gorm:"size:36;index" json:"created_by_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

func (e Expense) Entry() ledger.Expense {
	return ledger.Expense{
		SpentAt:     e.SpentAt,
		Category:    e.Category,
		Method:      e.Method,
		CustomLabel: e.CustomMethodLabel,
		Amount:      e.Amount,
	}
}
