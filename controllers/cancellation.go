// controllers/cancellation.go
package controllers

import (
	"net/http"
	"strconv"

	"homeserve-backend/config"
	"homeserve-backend/services"
	"homeserve-backend/utils"

	"github.com/gin-gonic/gin"
)

// CancelBooking handles POST /cancellations/:id. The booking flips to
// Cancelled and a pending refund is created, both in one transaction; a
// booking that is already Cancelled or Completed is rejected.
func CancelBooking(c *gin.Context) {
	customerID, ok := utils.CustomerIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	svc := services.NewCancellationService(config.DB)
	result, err := svc.Cancel(uint(bookingID), customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Booking cancelled successfully.",
		"data": gin.H{
			"booking_id":        result.BookingID,
			"refund_initiated":  true,
			"refund_amount":     result.RefundAmount,
			"original_amount":   result.OriginalAmount,
			"per_period":        result.PerPeriodCharge,
			"days_remaining":    result.DaysRemaining,
			"end_date":          result.EndDate.Format("2006-01-02"),
			"cancellation_date": result.CancelledAt,
		},
	})
}

// GetCustomerRefunds handles GET /cancellations/refunds/:cid. Customers can
// only list their own refunds.
func GetCustomerRefunds(c *gin.Context) {
	authID, ok := utils.CustomerIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	customerID, err := strconv.ParseUint(c.Param("cid"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}
	if uint(customerID) != authID {
		utils.RespondWithError(c, http.StatusForbidden, "Cannot view another customer's refunds")
		return
	}

	svc := services.NewCancellationService(config.DB)
	refunds, err := svc.RefundsForCustomer(uint(customerID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if len(refunds) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "No refunds found", "data": []gin.H{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": refunds})
}
