// controllers/otp.go
package controllers

import (
	"net/http"

	"homeserve-backend/config"
	"homeserve-backend/services"
	"homeserve-backend/utils"

	"github.com/gin-gonic/gin"
)

type SendOtpInput struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyOtpInput struct {
	Phone string `json:"phone" binding:"required"`
	Otp   string `json:"otp" binding:"required"`
}

// SendOtp issues a fresh verification code for a phone number
func SendOtp(c *gin.Context) {
	var input SendOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	svc := services.NewOtpService(config.DB)
	if err := svc.Send(input.Phone); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "OTP sent successfully"})
}

// VerifyOtp checks a code and marks the customer's phone as verified
func VerifyOtp(c *gin.Context) {
	var input VerifyOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := services.NewOtpService(config.DB)
	if err := svc.Verify(input.Phone, input.Otp); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "OTP verified successfully"})
}
