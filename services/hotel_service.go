package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-ledger/models"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) Get(hotelID string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, "id = ?", hotelID).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

type UpdateHotelInput struct {
	Name     *string
	Timezone *string
}

func (s *HotelService) Update(hotelID string, input UpdateHotelInput) (*models.Hotel, error) {
	hotel, err := s.Get(hotelID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			hotel.Name = name
		}
	}
	if input.Timezone != nil {
		tz := strings.TrimSpace(*input.Timezone)
		if _, err := time.LoadLocation(tz); err != nil {
			return nil, ErrInvalidTimezone
		}
		hotel.Timezone = tz
	}
	if err := s.DB.Save(hotel).Error; err != nil {
		return nil, err
	}
	return hotel, nil
}
