package services

import (
	"strings"

	"gorm.io/gorm"

	"hotel-ledger/models"
)

type CustomMethodService struct {
	DB *gorm.DB
}

func NewCustomMethodService(db *gorm.DB) *CustomMethodService {
	return &CustomMethodService{DB: db}
}

func (s *CustomMethodService) List(hotelID string) ([]models.CustomPaymentMethod, error) {
	var methods []models.CustomPaymentMethod
	err := s.DB.Where("hotel_id = ?", hotelID).Order("name ASC").Find(&methods).Error
	return methods, err
}

func (s *CustomMethodService) Create(hotelID, name string) (*models.CustomPaymentMethod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMethodNameRequired
	}
	method := models.CustomPaymentMethod{HotelID: hotelID, Name: name}
	if err := s.DB.Create(&method).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrMethodExists
		}
		return nil, err
	}
	return &method, nil
}

// Delete removes the label only; payments already recorded under it keep
// their method string and stay visible in reports.
func (s *CustomMethodService) Delete(hotelID, id string) error {
	result := s.DB.Where("hotel_id = ? AND id = ?", hotelID, id).Delete(&models.CustomPaymentMethod{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
