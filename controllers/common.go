package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
	"hotel-ledger/middleware"
	"hotel-ledger/models"
	"hotel-ledger/services"
	"hotel-ledger/utils"
)

// Every domain condition a service can raise, mapped to its HTTP shape.
// Anything not listed surfaces as a 500.
var errorMappings = []struct {
	target error
	status int
	code   string
}{
	{ledger.ErrInvalidRange, http.StatusBadRequest, "error.invalidRange"},
	{ledger.ErrInvalidStayDates, http.StatusBadRequest, "error.invalidStayDates"},
	{ledger.ErrBookingConflict, http.StatusBadRequest, "error.roomOccupied"},
	{ledger.ErrPeriodLocked, http.StatusForbidden, "error.monthClosed"},
	{gorm.ErrRecordNotFound, http.StatusNotFound, "error.notFound"},
	{services.ErrRoomInUse, http.StatusConflict, "error.roomInUse"},
	{services.ErrRoomNumberExists, http.StatusConflict, "error.roomNumberExists"},
	{services.ErrInvalidTransition, http.StatusBadRequest, "error.invalidTransition"},
	{services.ErrStayCheckedIn, http.StatusConflict, "error.stayCheckedIn"},
	{services.ErrStayHasPayments, http.StatusConflict, "error.stayHasPayments"},
	{services.ErrNonPositiveAmount, http.StatusBadRequest, "error.nonPositiveAmount"},
	{services.ErrNegativePrice, http.StatusBadRequest, "error.negativePrice"},
	{services.ErrSameRegister, http.StatusBadRequest, "error.sameRegister"},
	{services.ErrEmailExists, http.StatusConflict, "error.emailExists"},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, "error.invalidCredentials"},
	{services.ErrRegistrationDisabled, http.StatusForbidden, "error.registrationDisabled"},
	{services.ErrWeakPassword, http.StatusBadRequest, "error.weakPassword"},
	{services.ErrInvalidRole, http.StatusBadRequest, "error.invalidRole"},
	{services.ErrOwnerProtected, http.StatusForbidden, "error.ownerProtected"},
	{services.ErrSelfDelete, http.StatusForbidden, "error.selfDelete"},
	{services.ErrMethodExists, http.StatusConflict, "error.methodExists"},
	{services.ErrMethodNameRequired, http.StatusBadRequest, "error.methodNameRequired"},
	{services.ErrInvalidTimezone, http.StatusBadRequest, "error.invalidTimezone"},
}

// respondError translates a service error into the JSON error envelope.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			utils.JSONError(c, m.status, m.code, m.target.Error())
			return
		}
	}
	utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Internal server error")
}

func caller(c *gin.Context) models.UserContext {
	user, _ := middleware.CurrentUser(c)
	return user
}

func bindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Invalid request payload: "+err.Error())
}
