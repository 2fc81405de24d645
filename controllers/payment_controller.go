package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-ledger/services"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// List handles GET /api/payments.
func (ctl *PaymentController) List(c *gin.Context) {
	payments, err := ctl.Payments.List(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

type createPaymentPayload struct {
	StayID            string          `json:"stay_id" binding:"required"`
	PaidAt            string          `json:"paid_at"`
	Method            string          `json:"method"`
	CustomMethodLabel string          `json:"custom_method_label"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Comment           string          `json:"comment"`
}

// Create handles POST /api/payments.
func (ctl *PaymentController) Create(c *gin.Context) {
	var payload createPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	payment, err := ctl.Payments.Create(caller(c), services.CreatePaymentInput{
		StayID:            payload.StayID,
		PaidAt:            payload.PaidAt,
		Method:            payload.Method,
		CustomMethodLabel: payload.CustomMethodLabel,
		Amount:            payload.Amount,
		Comment:           payload.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

type updatePaymentPayload struct {
	PaidAt            *string          `json:"paid_at"`
	Method            *string          `json:"method"`
	CustomMethodLabel *string          `json:"custom_method_label"`
	Amount            *decimal.Decimal `json:"amount"`
	Comment           *string          `json:"comment"`
}

// Update handles PATCH /api/payments/:id.
func (ctl *PaymentController) Update(c *gin.Context) {
	var payload updatePaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	payment, err := ctl.Payments.Update(caller(c), c.Param("id"), services.UpdatePaymentInput{
		PaidAt:            payload.PaidAt,
		Method:            payload.Method,
		CustomMethodLabel: payload.CustomMethodLabel,
		Amount:            payload.Amount,
		Comment:           payload.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// Delete handles DELETE /api/payments/:id.
func (ctl *PaymentController) Delete(c *gin.Context) {
	if err := ctl.Payments.Delete(caller(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
