package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ledger/services"
)

type CustomMethodController struct {
	Methods *services.CustomMethodService
}

func NewCustomMethodController(methods *services.CustomMethodService) *CustomMethodController {
	return &CustomMethodController{Methods: methods}
}

// List handles GET /api/custom-payment-methods.
func (ctl *CustomMethodController) List(c *gin.Context) {
	methods, err := ctl.Methods.List(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

type createMethodPayload struct {
	Name string `json:"name" binding:"required"`
}

// Create handles POST /api/custom-payment-methods.
func (ctl *CustomMethodController) Create(c *gin.Context) {
	var payload createMethodPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	method, err := ctl.Methods.Create(caller(c).HotelID, payload.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, method)
}

// Delete handles DELETE /api/custom-payment-methods/:id.
func (ctl *CustomMethodController) Delete(c *gin.Context) {
	if err := ctl.Methods.Delete(caller(c).HotelID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
