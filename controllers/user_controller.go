package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ledger/services"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// List handles GET /api/users.
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Users.List(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Create handles POST /api/users.
func (ctl *UserController) Create(c *gin.Context) {
	var payload createUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	user, err := ctl.Users.Create(caller(c).HotelID, services.CreateUserInput{
		Email:    payload.Email,
		Password: payload.Password,
		FullName: payload.FullName,
		Role:     payload.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type updateRolePayload struct {
	Role string `json:"role" binding:"required"`
}

// UpdateRole handles PATCH /api/users/:id/role.
func (ctl *UserController) UpdateRole(c *gin.Context) {
	var payload updateRolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	user, err := ctl.Users.UpdateRole(caller(c).HotelID, c.Param("id"), payload.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:id.
func (ctl *UserController) Delete(c *gin.Context) {
	user := caller(c)
	if err := ctl.Users.Delete(user.HotelID, c.Param("id"), user.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
