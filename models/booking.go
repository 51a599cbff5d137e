package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking statuses. Bookings start as ongoing and end as either Completed
// (by the daily sweep once the end date passes) or Cancelled (by an explicit
// cancellation, which also creates a Refund).
const (
	BookingOngoing   = "ongoing"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

type Booking struct {
	ID          uint   `gorm:"primary_key" json:"id"`
	CustomerID  uint   `gorm:"index;not null" json:"customerId"`
	AddressID   *uint  `json:"addressId"`
	ServiceType string `gorm:"size:20;not null" json:"serviceType"` // cooking or cleaning

	StartDate time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate   time.Time `gorm:"type:date;not null;index" json:"endDate"`
	StartTime string    `gorm:"size:10" json:"startTime"`
	EndTime   string    `gorm:"size:10" json:"endTime"`

	WorkerID1 *uint `json:"workerId1"`
	WorkerID2 *uint `json:"workerId2"`

	PackageID  string          `gorm:"size:20" json:"packageId"`
	BasicPrice decimal.Decimal `gorm:"type:numeric(10,2)" json:"basicPrice"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"totalPrice"`
	Frequency  int             `gorm:"not null" json:"frequency"` // visits per month: 8 or 30

	// Service-specific request fields (dietary preference, BHK, services
	// picked, ...) kept as a single document rather than one near-identical
	// table per category.
	Details JSONB `gorm:"type:jsonb;default:'{}'" json:"details"`

	Status      string     `gorm:"size:20;default:'ongoing';index" json:"status"`
	CancelledAt *time.Time `json:"cancelledAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
