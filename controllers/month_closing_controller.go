package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ledger/services"
)

type MonthClosingController struct {
	Closings *services.MonthClosingService
}

func NewMonthClosingController(closings *services.MonthClosingService) *MonthClosingController {
	return &MonthClosingController{Closings: closings}
}

// List handles GET /api/month-closings.
func (ctl *MonthClosingController) List(c *gin.Context) {
	closings, err := ctl.Closings.List(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, closings)
}

// ClosePrevious handles POST /api/month-closings/close-previous. Calling it
// for an already-closed month returns the existing snapshot with 200.
func (ctl *MonthClosingController) ClosePrevious(c *gin.Context) {
	closing, created, err := ctl.Closings.ClosePrevious(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, closing)
}

// Reopen handles DELETE /api/month-closings/:month.
func (ctl *MonthClosingController) Reopen(c *gin.Context) {
	if err := ctl.Closings.Reopen(caller(c).HotelID, c.Param("month")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
