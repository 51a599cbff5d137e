// services/cancellation_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"homeserve-backend/models"
	"homeserve-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Refunds are paid out through UPI; a flat cancellation fee is withheld.
var cancellationFee = decimal.NewFromInt(500)

const refundPaymentMethod = "UPI"

// CancellationService cancels ongoing bookings and creates the matching
// refund row. Both writes happen in one transaction so a booking can never
// end up Cancelled without its refund or vice versa.
type CancellationService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCancellationService(db *gorm.DB) *CancellationService {
	return &CancellationService{db: db, now: time.Now}
}

// CancellationResult echoes the numbers behind a refund so the caller can
// show them to the customer.
type CancellationResult struct {
	BookingID       uint            `json:"booking_id"`
	RefundAmount    decimal.Decimal `json:"refund_amount"`
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	PerPeriodCharge decimal.Decimal `json:"per_period_charge"`
	DaysRemaining   int             `json:"days_remaining"`
	EndDate         time.Time       `json:"end_date"`
	CancelledAt     time.Time       `json:"cancellation_date"`
}

// ComputeRefund pro-rates the unused part of a booking and withholds the
// cancellation fee, floored at zero. Frequency is visits per month: 30 means
// daily service, 8 means the biweekly-style plan whose remaining half-weeks
// are counted as (days/7)*2.
func ComputeRefund(totalPrice decimal.Decimal, frequency int, daysRemaining int) decimal.Decimal {
	perPeriod := totalPrice.Div(decimal.NewFromInt(int64(frequency)))
	days := decimal.NewFromInt(int64(daysRemaining))

	var refund decimal.Decimal
	if frequency == 30 {
		refund = days.Mul(perPeriod).Sub(cancellationFee)
	} else {
		halfWeeks := days.Div(decimal.NewFromInt(7)).Mul(decimal.NewFromInt(2))
		refund = perPeriod.Mul(halfWeeks).Sub(cancellationFee)
	}

	if refund.IsNegative() {
		refund = decimal.Zero
	}
	return refund.Round(2)
}

// Cancel flips an ongoing booking to Cancelled and creates its refund.
// Bookings that are already Cancelled or Completed are rejected so a second
// call can never create a duplicate refund. A booking belonging to a
// different customer reads as not found.
func (s *CancellationService) Cancel(bookingID, customerID uint) (*CancellationResult, error) {
	now := s.now()
	var result *CancellationResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Where("customer_id = ?", customerID).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
			}
			return err
		}

		if booking.Status != models.BookingOngoing {
			return fmt.Errorf("%w: booking %d is %s", ErrPreconditionFailed, bookingID, booking.Status)
		}
		if booking.Frequency <= 0 {
			return fmt.Errorf("%w: booking %d has frequency %d", ErrUnsupportedValue, bookingID, booking.Frequency)
		}

		daysRemaining := utils.DaysBetween(now, booking.EndDate)
		refundAmount := ComputeRefund(booking.TotalPrice, booking.Frequency, daysRemaining)

		booking.Status = models.BookingCancelled
		booking.CancelledAt = &now
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		refund := models.Refund{
			BookingID:     booking.ID,
			CustomerID:    booking.CustomerID,
			Amount:        refundAmount,
			Status:        models.RefundPending,
			PaymentMethod: refundPaymentMethod,
			RefundDate:    now,
		}
		if err := tx.Create(&refund).Error; err != nil {
			return err
		}

		result = &CancellationResult{
			BookingID:       booking.ID,
			RefundAmount:    refundAmount,
			OriginalAmount:  booking.TotalPrice,
			PerPeriodCharge: booking.TotalPrice.Div(decimal.NewFromInt(int64(booking.Frequency))).Round(2),
			DaysRemaining:   daysRemaining,
			EndDate:         booking.EndDate,
			CancelledAt:     now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RefundRecord is a refund row enriched with the booking it belongs to.
type RefundRecord struct {
	models.Refund
	ServiceType string `json:"serviceType"`
	PackageID   string `json:"planId"`
	PlanName    string `json:"planName"`
}

// RefundsForCustomer lists a customer's refunds, newest first, with the
// originating booking's plan details attached.
func (s *CancellationService) RefundsForCustomer(customerID uint) ([]RefundRecord, error) {
	var refunds []models.Refund
	if err := s.db.Preload("Booking").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&refunds).Error; err != nil {
		return nil, err
	}

	records := make([]RefundRecord, 0, len(refunds))
	for _, refund := range refunds {
		records = append(records, RefundRecord{
			Refund:      refund,
			ServiceType: refund.Booking.ServiceType,
			PackageID:   refund.Booking.PackageID,
			PlanName:    planNameForPackage(refund.Booking.PackageID),
		})
	}
	return records, nil
}

func planNameForPackage(packageID string) string {
	switch {
	case strings.HasPrefix(packageID, "BAS"):
		return "Basic"
	case strings.HasPrefix(packageID, "STA"):
		return "Standard"
	case strings.HasPrefix(packageID, "PRE"):
		return "Premium"
	default:
		return ""
	}
}
