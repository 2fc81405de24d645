package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ledger/services"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

// Get handles GET /api/hotels/me.
func (ctl *HotelController) Get(c *gin.Context) {
	hotel, err := ctl.Hotels.Get(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

type updateHotelPayload struct {
	Name     *string `json:"name"`
	Timezone *string `json:"timezone"`
}

// Update handles PATCH /api/hotels/me.
func (ctl *HotelController) Update(c *gin.Context) {
	var payload updateHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	hotel, err := ctl.Hotels.Update(caller(c).HotelID, services.UpdateHotelInput{
		Name:     payload.Name,
		Timezone: payload.Timezone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}
