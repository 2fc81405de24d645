package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoomTypeStandard = "STANDARD"
	RoomTypeEconom   = "ECONOM"
)

type Room struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	HotelID   string          `gorm:"size:36;index;uniqueIndex:uniq_rooms_hotel_number" json:"hotel_id"`
	Number    string          `gorm:"size:50;uniqueIndex:uniq_rooms_hotel_number" json:"number"`
	Floor     int             `json:"floor"`
	RoomType  string          `gorm:"size:20;default:STANDARD" json:"room_type"`
	Capacity  int             `gorm:"default:1" json:"capacity"`
	BasePrice decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"base_price"`
	Active    bool            `gorm:"default:true" json:"active"`
	Notes     string          `gorm:"type:text" json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
