package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hotel is the tenant. Every other entity carries its id; nothing is ever
// visible across hotels.
type Hotel struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Timezone  string    `gorm:"size:100;default:Asia/Tashkent" json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
