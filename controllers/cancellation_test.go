package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homeserve-backend/config"
	"homeserve-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// asCustomer stands in for AuthMiddleware, setting the context values it
// would extract from a valid token.
func asCustomer(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("customerId", fmt.Sprintf("%d", id))
		c.Next()
	}
}

func setupCancellationTest(t *testing.T, customerID uint) (*gin.Engine, models.Booking) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Booking{}, &models.Refund{}))
	config.DB = db

	booking := models.Booking{
		CustomerID:  2,
		ServiceType: "cooking",
		StartDate:   time.Now().AddDate(0, -1, 0),
		EndDate:     time.Now().AddDate(0, 0, 10),
		PackageID:   "STA6969",
		TotalPrice:  decimal.RequireFromString("3000"),
		Frequency:   30,
		Status:      models.BookingOngoing,
	}
	require.NoError(t, db.Create(&booking).Error)

	r := gin.New()
	r.Use(asCustomer(customerID))
	r.POST("/cancellations/:id", CancelBooking)
	r.GET("/cancellations/refunds/:cid", GetCustomerRefunds)
	return r, booking
}

func TestCancelBookingOwnedByAnotherCustomer(t *testing.T) {
	r, booking := setupCancellationTest(t, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cancellations/%d", booking.ID), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var updated models.Booking
	require.NoError(t, config.DB.First(&updated, booking.ID).Error)
	assert.Equal(t, models.BookingOngoing, updated.Status)
}

func TestCancelOwnBooking(t *testing.T) {
	r, booking := setupCancellationTest(t, 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cancellations/%d", booking.ID), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Booking
	require.NoError(t, config.DB.First(&updated, booking.ID).Error)
	assert.Equal(t, models.BookingCancelled, updated.Status)
}

func TestGetRefundsForAnotherCustomerForbidden(t *testing.T) {
	r, _ := setupCancellationTest(t, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cancellations/refunds/2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetOwnRefunds(t *testing.T) {
	r, booking := setupCancellationTest(t, 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cancellations/%d", booking.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/cancellations/refunds/2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
