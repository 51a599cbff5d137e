package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refund statuses.
const (
	RefundPending   = "pending"
	RefundProcessed = "processed"
	RefundFailed    = "failed"
)

// Refund is created exactly once per cancelled booking, inside the same
// transaction that flips the booking to Cancelled.
type Refund struct {
	ID         uint `gorm:"primary_key" json:"id"`
	BookingID  uint `gorm:"uniqueIndex;not null" json:"bookingId"`
	CustomerID uint `gorm:"index;not null" json:"customerId"`

	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status        string          `gorm:"size:20;default:'pending'" json:"status"`
	PaymentMethod string          `gorm:"size:50" json:"paymentMethod"`
	RefundDate    time.Time       `json:"refundDate"`

	CreatedAt time.Time `json:"createdAt"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}
