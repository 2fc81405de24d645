package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-ledger/services"
)

type StayController struct {
	Stays *services.StayService
}

func NewStayController(stays *services.StayService) *StayController {
	return &StayController{Stays: stays}
}

// List handles GET /api/stays.
func (ctl *StayController) List(c *gin.Context) {
	stays, err := ctl.Stays.List(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stays)
}

// Get handles GET /api/stays/:id.
func (ctl *StayController) Get(c *gin.Context) {
	stay, err := ctl.Stays.Get(caller(c).HotelID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stay)
}

type createStayPayload struct {
	RoomID           string          `json:"room_id" binding:"required"`
	GuestName        string          `json:"guest_name" binding:"required"`
	GuestPhone       string          `json:"guest_phone"`
	CheckInDate      string          `json:"check_in_date" binding:"required"`
	CheckOutDate     string          `json:"check_out_date" binding:"required"`
	Status           string          `json:"status"`
	PricePerNight    decimal.Decimal `json:"price_per_night"`
	WeeklyDiscount   decimal.Decimal `json:"weekly_discount"`
	ManualAdjustment decimal.Decimal `json:"manual_adjustment"`
	DepositExpected  decimal.Decimal `json:"deposit_expected"`
	Comment          string          `json:"comment"`
}

// Create handles POST /api/stays.
func (ctl *StayController) Create(c *gin.Context) {
	var payload createStayPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	stay, err := ctl.Stays.Create(caller(c), services.CreateStayInput{
		RoomID:           payload.RoomID,
		GuestName:        payload.GuestName,
		GuestPhone:       payload.GuestPhone,
		CheckInDate:      payload.CheckInDate,
		CheckOutDate:     payload.CheckOutDate,
		Status:           payload.Status,
		PricePerNight:    payload.PricePerNight,
		WeeklyDiscount:   payload.WeeklyDiscount,
		ManualAdjustment: payload.ManualAdjustment,
		DepositExpected:  payload.DepositExpected,
		Comment:          payload.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stay)
}

type updateStayPayload struct {
	RoomID           *string          `json:"room_id"`
	GuestName        *string          `json:"guest_name"`
	GuestPhone       *string          `json:"guest_phone"`
	CheckInDate      *string          `json:"check_in_date"`
	CheckOutDate     *string          `json:"check_out_date"`
	Status           *string          `json:"status"`
	PricePerNight    *decimal.Decimal `json:"price_per_night"`
	WeeklyDiscount   *decimal.Decimal `json:"weekly_discount"`
	ManualAdjustment *decimal.Decimal `json:"manual_adjustment"`
	DepositExpected  *decimal.Decimal `json:"deposit_expected"`
	Comment          *string          `json:"comment"`
}

// Update handles PATCH /api/stays/:id.
func (ctl *StayController) Update(c *gin.Context) {
	var payload updateStayPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	stay, err := ctl.Stays.Update(caller(c), c.Param("id"), services.UpdateStayInput{
		RoomID:           payload.RoomID,
		GuestName:        payload.GuestName,
		GuestPhone:       payload.GuestPhone,
		CheckInDate:      payload.CheckInDate,
		CheckOutDate:     payload.CheckOutDate,
		Status:           payload.Status,
		PricePerNight:    payload.PricePerNight,
		WeeklyDiscount:   payload.WeeklyDiscount,
		ManualAdjustment: payload.ManualAdjustment,
		DepositExpected:  payload.DepositExpected,
		Comment:          payload.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stay)
}

// Delete handles DELETE /api/stays/:id.
func (ctl *StayController) Delete(c *gin.Context) {
	if err := ctl.Stays.Delete(caller(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
