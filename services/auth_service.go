package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-ledger/models"
	"hotel-ledger/utils"
)

type AuthService struct {
	DB            *gorm.DB
	Tokens        *utils.TokenManager
	AllowRegister bool
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenManager, allowRegister bool) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, AllowRegister: allowRegister}
}

type RegisterInput struct {
	Email     string
	Password  string
	FullName  string
	HotelName string
}

type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
	Role  string      `json:"role"`
}

// Register creates a hotel and its first admin. Open registration is gated
// behind ALLOW_REGISTER, except that a completely empty install may always
// bootstrap its first account.
func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	if !s.AllowRegister {
		var count int64
		if err := s.DB.Model(&models.User{}).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrRegistrationDisabled
		}
	}

	email := normalizeEmail(input.Email)
	if len(input.Password) < 6 {
		return nil, ErrWeakPassword
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

	hotelName := strings.TrimSpace(input.HotelName)
	if hotelName == "" {
		hotelName = "My Hotel"
	}

	var user models.User
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		hotel := models.Hotel{Name: hotelName}
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}
		user = models.User{
			Email:        email,
			PasswordHash: string(hash),
			FullName:     strings.TrimSpace(input.FullName),
			HotelID:      hotel.ID,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{UserID: user.ID, Role: models.RoleAdmin}).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return s.issue(user, models.RoleAdmin)
}

// Login checks credentials and issues a token carrying the resolved role.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	var user models.User
	err := s.DB.Preload("Roles").Where("LOWER(email) = ?", normalizeEmail(email)).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user, models.ResolveRole(user.Roles))
}

// Me reloads the caller's profile from the database.
func (s *AuthService) Me(userID string) (*models.User, string, error) {
	var user models.User
	if err := s.DB.Preload("Roles").First(&user, "id = ?", userID).Error; err != nil {
		return nil, "", err
	}
	return &user, models.ResolveRole(user.Roles), nil
}

func (s *AuthService) issue(user models.User, role string) (*AuthResult, error) {
	token, err := s.Tokens.Sign(user.ID, user.Email, user.FullName, user.HotelID, role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user, Role: role}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
