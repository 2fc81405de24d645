package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
)

type Stay struct {
	ID                     string          `gorm:"primaryKey;size:36" json:"id"`
	HotelID                string          `gorm:"size:36;index" json:"hotel_id"`
	RoomID                 string          `gorm:"size:36;index" json:"room_id"`
	GuestName              string          `gorm:"size:255" json:"guest_name"`
	GuestPhone             string          `gorm:"size:50" json:"guest_phone"`
	CheckInDate            time.Time       `gorm:"index" json:"check_in_date"`
	CheckOutDate           time.Time       `gorm:"index" json:"check_out_date"`
	Status                 string          `gorm:"size:20;default:BOOKED" json:"status"`
	PricePerNight          decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"price_per_night"`
	WeeklyDiscountAmount   decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"weekly_discount_amount"`
	ManualAdjustmentAmount decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"manual_adjustment_amount"`
	DepositExpected        decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"deposit_expected"`
	Comment                string          `gorm:"type:text" json:"comment"`
	CreatedAt              time.Time       `json:"created_at"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}

func (s *Stay) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Terms maps the stored row into the calculator's shape.
func (s Stay) Terms() ledger.Stay {
	return ledger.Stay{
		ID:               s.ID,
		RoomID:           s.RoomID,
		CheckIn:          s.CheckInDate,
		CheckOut:         s.CheckOutDate,
		Status:           s.Status,
		PricePerNight:    s.PricePerNight,
		WeeklyDiscount:   s.WeeklyDiscountAmount,
		ManualAdjustment: s.ManualAdjustmentAmount,
	}
}
