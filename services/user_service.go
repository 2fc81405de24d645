package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-ledger/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// UserView is a staff row with its resolved role flattened in.
type UserView struct {
	models.User
	Role    string `json:"role"`
	IsOwner bool   `json:"is_owner"`
}

func (s *UserService) List(hotelID string) ([]UserView, error) {
	var users []models.User
	err := s.DB.Preload("Roles").
		Where("hotel_id = ?", hotelID).
		Order("created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	views := make([]UserView, 0, len(users))
	for i, u := range users {
		views = append(views, UserView{
			User:    u,
			Role:    models.ResolveRole(u.Roles),
			IsOwner: i == 0,
		})
	}
	return views, nil
}

type CreateUserInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

func (s *UserService) Create(hotelID string, input CreateUserInput) (*UserView, error) {
	email := normalizeEmail(input.Email)
	if len(input.Password) < 6 {
		return nil, ErrWeakPassword
	}
	role := strings.ToUpper(strings.TrimSpace(input.Role))
	if role == "" {
		role = models.RoleManager
	}
	if role != models.RoleAdmin && role != models.RoleManager {
		return nil, ErrInvalidRole
	}

	var existing models.User
	err := s.DB.Where("LOWER(email) = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailExists
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(input.FullName),
		HotelID:      hotelID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{UserID: user.ID, Role: role}).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return &UserView{User: user, Role: role}, nil
}

// UpdateRole replaces a user's role rows. The hotel's earliest account is the
// owner and keeps admin forever.
func (s *UserService) UpdateRole(hotelID, userID, role string) (*UserView, error) {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role != models.RoleAdmin && role != models.RoleManager {
		return nil, ErrInvalidRole
	}

	user, err := s.findInHotel(hotelID, userID)
	if err != nil {
		return nil, err
	}
	ownerID, err := s.ownerID(hotelID)
	if err != nil {
		return nil, err
	}
	if user.ID == ownerID && role != models.RoleAdmin {
		return nil, ErrOwnerProtected
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{UserID: user.ID, Role: role}).Error
	})
	if err != nil {
		return nil, err
	}
	return &UserView{User: *user, Role: role, IsOwner: user.ID == ownerID}, nil
}

func (s *UserService) Delete(hotelID, userID, callerID string) error {
	if userID == callerID {
		return ErrSelfDelete
	}
	user, err := s.findInHotel(hotelID, userID)
	if err != nil {
		return err
	}
	ownerID, err := s.ownerID(hotelID)
	if err != nil {
		return err
	}
	if user.ID == ownerID {
		return ErrOwnerProtected
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", user.ID).Error
	})
}

func (s *UserService) findInHotel(hotelID, userID string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("hotel_id = ? AND id = ?", hotelID, userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ownerID(hotelID string) (string, error) {
	var owner models.User
	err := s.DB.Where("hotel_id = ?", hotelID).Order("created_at ASC").First(&owner).Error
	if err != nil {
		return "", err
	}
	return owner.ID, nil
}
