package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:text" json:"-"`
	FullName     string    `gorm:"size:255" json:"full_name"`
	HotelID      string    `gorm:"size:36;index" json:"hotel_id"`
	CreatedAt    time.Time `json:"created_at"`

	Hotel Hotel      `gorm:"foreignKey:HotelID;references:ID" json:"-"`
	Roles []UserRole `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type UserRole struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;index" json:"user_id"`
	Role   string `gorm:"size:20" json:"role"`
}

func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ResolveRole collapses a user's role rows into one effective role: any ADMIN
// row wins, otherwise the first row, otherwise MANAGER. Resolved once at
// login and carried in the token for the rest of the session.
func ResolveRole(roles []UserRole) string {
	for _, r := range roles {
		if r.Role == RoleAdmin {
			return RoleAdmin
		}
	}
	if len(roles) > 0 {
		return roles[0].Role
	}
	return RoleManager
}

// UserContext is the authenticated caller as seen by services: who, which
// hotel, and the already-resolved role.
type UserContext struct {
	UserID   string
	HotelID  string
	Email    string
	FullName string
	Role     string
}

// IsAdmin reports whether the caller holds the elevated role that bypasses
// the month-closing lock.
func (u UserContext) IsAdmin() bool {
	return u.Role == RoleAdmin
}
