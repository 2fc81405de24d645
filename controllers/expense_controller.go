package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-ledger/services"
)

type ExpenseController struct {
	Expenses *services.ExpenseService
}

func NewExpenseController(expenses *services.ExpenseService) *ExpenseController {
	return &ExpenseController{Expenses: expenses}
}

// List handles GET /api/expenses.
func (ctl *ExpenseController) List(c *gin.Context) {
	expenses, err := ctl.Expenses.List(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

type createExpensePayload struct {
	SpentAt           string          `json:"spent_at"`
	Category          string          `json:"category"`
	Method            string          `json:"method"`
	CustomMethodLabel string          `json:"custom_method_label"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Comment           string          `json:"comment"`
}

// Create handles POST /api/expenses.
func (ctl *ExpenseController) Create(c *gin.Context) {
	var payload createExpensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	expense, err := ctl.Expenses.Create(caller(c), services.CreateExpenseInput{
		SpentAt:           payload.SpentAt,
		Category:          payload.Category,
		Method:            payload.Method,
		CustomMethodLabel: payload.CustomMethodLabel,
		Amount:            payload.Amount,
		Comment:           payload.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

type updateExpensePayload struct {
	SpentAt           *string          `json:"spent_at"`
	Category          *string          `json:"category"`
	Method            *string          `json:"method"`
	CustomMethodLabel *string          `json:"custom_method_label"`
	Amount            *decimal.Decimal `json:"amount"`
	Comment           *string          `json:"comment"`
}

// Update handles PATCH /api/expenses/:id.
func (ctl *ExpenseController) Update(c *gin.Context) {
	var payload updateExpensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	expense, err := ctl.Expenses.Update(caller(c), c.Param("id"), services.UpdateExpenseInput{
		SpentAt:           payload.SpentAt,
		Category:          payload.Category,
		Method:            payload.Method,
		CustomMethodLabel: payload.CustomMethodLabel,
		Amount:            payload.Amount,
		Comment:           payload.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Delete handles DELETE /api/expenses/:id.
func (ctl *ExpenseController) Delete(c *gin.Context) {
	if err := ctl.Expenses.Delete(caller(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
