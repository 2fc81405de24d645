package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomPaymentMethod is an admin-defined cash register label beyond the four
// built-in methods.
type CustomPaymentMethod struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	HotelID   string    `gorm:"size:36;index;uniqueIndex:uniq_methods_hotel_name" json:"hotel_id"`
	Name      string    `gorm:"size:100;uniqueIndex:uniq_methods_hotel_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *CustomPaymentMethod) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
