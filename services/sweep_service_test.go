package services

import (
	"testing"
	"time"

	"homeserve-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepMarksExpiredBookingsCompleted(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 7, 15, 0, 30, 0, 0, time.UTC)

	svc := NewSweepService(db)
	svc.now = func() time.Time { return now }

	bookings := []models.Booking{
		{CustomerID: 1, ServiceType: "cooking", StartDate: now.AddDate(0, -1, 0), EndDate: now.AddDate(0, 0, -2), TotalPrice: dec("3000"), Frequency: 30, Status: models.BookingOngoing},
		{CustomerID: 2, ServiceType: "cleaning", StartDate: now.AddDate(0, -1, 0), EndDate: now, TotalPrice: dec("1200"), Frequency: 8, Status: models.BookingOngoing},
		{CustomerID: 3, ServiceType: "cooking", StartDate: now, EndDate: now.AddDate(0, 0, 5), TotalPrice: dec("3000"), Frequency: 30, Status: models.BookingOngoing},
		{CustomerID: 4, ServiceType: "cooking", StartDate: now.AddDate(0, -1, 0), EndDate: now.AddDate(0, 0, -1), TotalPrice: dec("3000"), Frequency: 30, Status: models.BookingCancelled},
	}
	require.NoError(t, db.Create(&bookings).Error)

	svc.Run()

	var statuses []string
	require.NoError(t, db.Model(&models.Booking{}).Order("customer_id").Pluck("status", &statuses).Error)

	assert.Equal(t, []string{
		models.BookingCompleted, // past end date
		models.BookingCompleted, // ends today
		models.BookingOngoing,   // still running
		models.BookingCancelled, // cancelled bookings are left alone
	}, statuses)
}

func TestSweepIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 7, 15, 0, 30, 0, 0, time.UTC)

	svc := NewSweepService(db)
	svc.now = func() time.Time { return now }

	booking := models.Booking{CustomerID: 1, ServiceType: "cooking", StartDate: now.AddDate(0, -1, 0), EndDate: now.AddDate(0, 0, -2), TotalPrice: dec("3000"), Frequency: 30, Status: models.BookingOngoing}
	require.NoError(t, db.Create(&booking).Error)

	svc.Run()
	svc.Run()

	var updated models.Booking
	require.NoError(t, db.First(&updated, booking.ID).Error)
	assert.Equal(t, models.BookingCompleted, updated.Status)
}
