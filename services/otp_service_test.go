package services

import (
	"testing"
	"time"

	"homeserve-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpSendReplacesPreviousCode(t *testing.T) {
	db := newTestDB(t)
	svc := &OtpService{db: db} // no Twilio client in tests

	require.NoError(t, svc.Send("+919876543210"))
	require.NoError(t, svc.Send("+919876543210"))

	var count int64
	require.NoError(t, db.Model(&models.Otp{}).Where("phone = ?", "+919876543210").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOtpVerifyMarksCustomerVerified(t *testing.T) {
	db := newTestDB(t)
	svc := &OtpService{db: db}

	customer := models.Customer{Name: "Asha", Phone: "+919876543210", Password: "secret-pass"}
	require.NoError(t, db.Create(&customer).Error)

	require.NoError(t, db.Create(&models.Otp{Phone: customer.Phone, Code: "4321"}).Error)

	require.NoError(t, svc.Verify(customer.Phone, "4321"))

	var updated models.Customer
	require.NoError(t, db.First(&updated, customer.ID).Error)
	assert.True(t, updated.OtpVerified)

	// Code is consumed
	var count int64
	require.NoError(t, db.Model(&models.Otp{}).Where("phone = ?", customer.Phone).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOtpVerifyWrongCode(t *testing.T) {
	db := newTestDB(t)
	svc := &OtpService{db: db}

	require.NoError(t, db.Create(&models.Otp{Phone: "+919876543210", Code: "4321"}).Error)

	err := svc.Verify("+919876543210", "0000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOtpVerifyExpiredCode(t *testing.T) {
	db := newTestDB(t)
	svc := &OtpService{db: db}

	stale := models.Otp{Phone: "+919876543210", Code: "4321", CreatedAt: time.Now().Add(-16 * time.Minute)}
	require.NoError(t, db.Create(&stale).Error)

	err := svc.Verify("+919876543210", "4321")
	assert.ErrorIs(t, err, ErrExpired)
}
