package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-ledger/services"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// List handles GET /api/rooms.
func (ctl *RoomController) List(c *gin.Context) {
	rooms, err := ctl.Rooms.List(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type createRoomPayload struct {
	Number    string          `json:"number" binding:"required"`
	Floor     int             `json:"floor"`
	RoomType  string          `json:"room_type"`
	Capacity  int             `json:"capacity"`
	BasePrice decimal.Decimal `json:"base_price"`
	Active    *bool           `json:"active"`
	Notes     string          `json:"notes"`
}

// Create handles POST /api/rooms.
func (ctl *RoomController) Create(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	room, err := ctl.Rooms.Create(caller(c), services.CreateRoomInput{
		Number:    payload.Number,
		Floor:     payload.Floor,
		RoomType:  payload.RoomType,
		Capacity:  payload.Capacity,
		BasePrice: payload.BasePrice,
		Active:    payload.Active,
		Notes:     payload.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

type updateRoomPayload struct {
	Number    *string          `json:"number"`
	Floor     *int             `json:"floor"`
	RoomType  *string          `json:"room_type"`
	Capacity  *int             `json:"capacity"`
	BasePrice *decimal.Decimal `json:"base_price"`
	Active    *bool            `json:"active"`
	Notes     *string          `json:"notes"`
}

// Update handles PATCH /api/rooms/:id.
func (ctl *RoomController) Update(c *gin.Context) {
	var payload updateRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	room, err := ctl.Rooms.Update(caller(c), c.Param("id"), services.UpdateRoomInput{
		Number:    payload.Number,
		Floor:     payload.Floor,
		RoomType:  payload.RoomType,
		Capacity:  payload.Capacity,
		BasePrice: payload.BasePrice,
		Active:    payload.Active,
		Notes:     payload.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /api/rooms/:id.
func (ctl *RoomController) Delete(c *gin.Context) {
	if err := ctl.Rooms.Delete(caller(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
