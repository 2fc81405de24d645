package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ledger/services"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// Period handles GET /api/reports?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (ctl *ReportController) Period(c *gin.Context) {
	snapshot, err := ctl.Reports.Build(caller(c).HotelID, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Balances handles GET /api/registers/balances.
func (ctl *ReportController) Balances(c *gin.Context) {
	balances, err := ctl.Reports.Balances(caller(c).HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balances": balances})
}
