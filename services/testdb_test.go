package services

import (
	"fmt"
	"testing"

	"homeserve-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Otp{},
		&models.Meal{},
		&models.AdditionalService{},
		&models.CleaningPlan{},
		&models.AdditionalCleaning{},
		&models.Booking{},
		&models.Refund{},
	))
	return db
}
