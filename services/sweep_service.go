// services/sweep_service.go
package services

import (
	"log"
	"time"

	"homeserve-backend/models"
	"homeserve-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SweepService marks bookings whose end date has passed as Completed.
// Cancelled bookings are left alone. The update is idempotent, so a failed
// run is simply picked up by the next one.
type SweepService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSweepService(db *gorm.DB) *SweepService {
	return &SweepService{db: db, now: time.Now}
}

// StartScheduler runs the sweep every day shortly after midnight.
func (s *SweepService) StartScheduler() {
	c := cron.New()

	c.AddFunc("5 0 * * *", func() {
		s.Run()
	})

	c.Start()
	log.Println("Booking sweep scheduler started")
}

// Run performs one sweep as a single bulk update.
func (s *SweepService) Run() {
	// Everything ending today or earlier, regardless of time of day.
	cutoff := utils.BeginningOfDay(s.now()).AddDate(0, 0, 1)

	result := s.db.Model(&models.Booking{}).
		Where("end_date < ? AND status = ?", cutoff, models.BookingOngoing).
		Update("status", models.BookingCompleted)

	if result.Error != nil {
		log.Printf("Booking sweep failed: %v", result.Error)
		return
	}
	log.Printf("Booking sweep completed, %d bookings marked %s", result.RowsAffected, models.BookingCompleted)
}
