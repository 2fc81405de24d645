package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
)

// Transfer moves money between two cash registers. For balances it is an
// outflow on one side and an inflow on the other; it never counts as revenue
// or expense.
type Transfer struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	HotelID       string          `gorm:"size:36;index" json:"hotel_id"`
	TransferredAt time.Time       `gorm:"index" json:"transferred_at"`
	FromMethod    string          `gorm:"size:100" json:"from_method"`
	ToMethod      string          `gorm:"size:100" json:"to_method"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"amount"`
	Comment       string          `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (t Transfer) Entry() ledger.Transfer {
	return ledger.Transfer{
		TransferredAt: t.TransferredAt,
		FromMethod:    t.FromMethod,
		ToMethod:      t.ToMethod,
		Amount:        t.Amount,
	}
}
