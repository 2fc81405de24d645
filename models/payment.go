package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
)

type Payment struct {
	ID                string          `gorm:"primaryKey;size:36" json:"id"`
	HotelID           string          `gorm:"size:36;index" json:"hotel_id"`
	StayID            string          `gorm:"size:36;index" json:"stay_id"`
	PaidAt            time.Time       `gorm:"index" json:"paid_at"`
	Method            string          `gorm:"size:20;default:CASH" json:"method"`
	CustomMethodLabel string          `gorm:"size:100" json:"custom_method_label"`
	Amount            decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"amount"`
	Comment           string          `gorm:"type:text" json:"comment"`
	CreatedAt         time.Time       `json:"created_at"`

	Stay Stay `gorm:"foreignKey:StayID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p Payment) Entry() ledger.Payment {
	return ledger.Payment{
		StayID:      p.StayID,
		PaidAt:      p.PaidAt,
		Method:      p.Method,
		CustomLabel: p.CustomMethodLabel,
		Amount:      p.Amount,
	}
}
