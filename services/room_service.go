package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
	"hotel-ledger/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type CreateRoomInput struct {
	Number    string
	Floor     int
	RoomType  string
	Capacity  int
	BasePrice decimal.Decimal
	Active    *bool
	Notes     string
}

type UpdateRoomInput struct {
	Number    *string
	Floor     *int
	RoomType  *string
	Capacity  *int
	BasePrice *decimal.Decimal
	Active    *bool
	Notes     *string
}

func (s *RoomService) List(hotelID string) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("hotel_id = ?", hotelID).Order("number ASC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Create(user models.UserContext, in CreateRoomInput) (*models.Room, error) {
	if in.BasePrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	roomType := in.RoomType
	if roomType == "" {
		roomType = models.RoomTypeStandard
	}
	capacity := in.Capacity
	if capacity < 1 {
		capacity = 1
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	room := models.Room{
		HotelID:   user.HotelID,
		Number:    in.Number,
		Floor:     in.Floor,
		RoomType:  roomType,
		Capacity:  capacity,
		BasePrice: in.BasePrice,
		Active:    active,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrRoomNumberExists
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(user models.UserContext, id string, in UpdateRoomInput) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, user.HotelID).First(&room).Error; err != nil {
		return nil, err
	}

	if in.Number != nil {
		room.Number = *in.Number
	}
	if in.Floor != nil {
		room.Floor = *in.Floor
	}
	if in.RoomType != nil {
		room.RoomType = *in.RoomType
	}
	if in.Capacity != nil && *in.Capacity >= 1 {
		room.Capacity = *in.Capacity
	}
	if in.BasePrice != nil {
		if in.BasePrice.IsNegative() {
			return nil, ErrNegativePrice
		}
		room.BasePrice = *in.BasePrice
	}
	if in.Active != nil {
		room.Active = *in.Active
	}
	if in.Notes != nil {
		room.Notes = *in.Notes
	}

	if err := s.DB.Save(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrRoomNumberExists
		}
		return nil, err
	}
	return &room, nil
}

// Delete removes a room unless a booked or checked-in stay still references
// it.
func (s *RoomService) Delete(user models.UserContext, id string) error {
	var room models.Room
	if err := s.DB.Where("id = ? AND hotel_id = ?", id, user.HotelID).First(&room).Error; err != nil {
		return err
	}

	var activeStays int64
	err := s.DB.Model(&models.Stay{}).
		Where("room_id = ? AND status IN ?", id, []string{ledger.StatusBooked, ledger.StatusCheckedIn}).
		Count(&activeStays).Error
	if err != nil {
		return err
	}
	if activeStays > 0 {
		return ErrRoomInUse
	}

	return s.DB.Delete(&room).Error
}
