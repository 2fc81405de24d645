package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"hotel-ledger/ledger"
	"hotel-ledger/services"
)

func TestRespondErrorStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{ledger.ErrBookingConflict, http.StatusBadRequest},
		{ledger.ErrPeriodLocked, http.StatusForbidden},
		{ledger.ErrInvalidRange, http.StatusBadRequest},
		{ledger.ErrInvalidStayDates, http.StatusBadRequest},
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{services.ErrRoomInUse, http.StatusConflict},
		{services.ErrStayCheckedIn, http.StatusConflict},
		{services.ErrStayHasPayments, http.StatusConflict},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrEmailExists, http.StatusConflict},
		{services.ErrOwnerProtected, http.StatusForbidden},
		{services.ErrSameRegister, http.StatusBadRequest},
		{errors.New("database is on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRespondErrorWrappedSentinel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, fmt.Errorf("creating stay: %w", ledger.ErrBookingConflict))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "occupied")
}

func TestRespondErrorNeverLeaksInternalMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("dial tcp 10.0.0.5:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}
