package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MonthClosing freezes a month's report snapshot and locks that month's
// records against non-admin edits. Deleting the row reopens the month.
type MonthClosing struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	HotelID    string         `gorm:"size:36;index;uniqueIndex:uniq_closings_hotel_month" json:"hotel_id"`
	Month      string         `gorm:"size:7;uniqueIndex:uniq_closings_hotel_month" json:"month"`
	ClosedAt   time.Time      `json:"closed_at"`
	TotalsJSON datatypes.JSON `gorm:"column:totals_json" json:"totals_json"`
}

func (m *MonthClosing) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
