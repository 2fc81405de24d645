package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ledger/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type registerPayload struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FullName  string `json:"full_name"`
	HotelName string `json:"hotel_name"`
}

// Register handles POST /api/auth/register.
func (ctl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	result, err := ctl.Auth.Register(services.RegisterInput{
		Email:     payload.Email,
		Password:  payload.Password,
		FullName:  payload.FullName,
		HotelName: payload.HotelName,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login.
func (ctl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	result, err := ctl.Auth.Login(payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Me handles GET /api/auth/me.
func (ctl *AuthController) Me(c *gin.Context) {
	user := caller(c)
	profile, role, err := ctl.Auth.Me(user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile, "role": role})
}
