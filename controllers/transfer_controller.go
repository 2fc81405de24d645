package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-ledger/services"
)

type TransferController struct {
	Transfers *services.TransferService
}

func NewTransferController(transfers *services.TransferService) *TransferController {
	return &TransferController{Transfers: transfers}
}

// List handles GET /api/transfers.
func (ctl *TransferController) List(c *gin.Context) {
	transfers, err := ctl.Transfers.List(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transfers)
}

type createTransferPayload struct {
	TransferredAt string          `json:"transferred_at"`
	FromMethod    string          `json:"from_method" binding:"required"`
	ToMethod      string          `json:"to_method" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Comment       string          `json:"comment"`
}

// Create handles POST /api/transfers.
func (ctl *TransferController) Create(c *gin.Context) {
	var payload createTransferPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	transfer, err := ctl.Transfers.Create(caller(c), services.CreateTransferInput{
		TransferredAt: payload.TransferredAt,
		FromMethod:    payload.FromMethod,
		ToMethod:      payload.ToMethod,
		Amount:        payload.Amount,
		Comment:       payload.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transfer)
}

type updateTransferPayload struct {
	TransferredAt *string          `json:"transferred_at"`
	FromMethod    *string          `json:"from_method"`
	ToMethod      *string          `json:"to_method"`
	Amount        *decimal.Decimal `json:"amount"`
	Comment       *string          `json:"comment"`
}

// Update handles PATCH /api/transfers/:id.
func (ctl *TransferController) Update(c *gin.Context) {
	var payload updateTransferPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	transfer, err := ctl.Transfers.Update(caller(c), c.Param("id"), services.UpdateTransferInput{
		TransferredAt: payload.TransferredAt,
		FromMethod:    payload.FromMethod,
		ToMethod:      payload.ToMethod,
		Amount:        payload.Amount,
		Comment:       payload.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transfer)
}

// Delete handles DELETE /api/transfers/:id.
func (ctl *TransferController) Delete(c *gin.Context) {
	if err := ctl.Transfers.Delete(caller(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
