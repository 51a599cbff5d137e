// services/otp_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"homeserve-backend/models"
	"homeserve-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

const otpValidity = 15 * time.Minute

// OtpService issues and verifies phone one-time codes, delivered over
// Twilio SMS. One live code per phone number.
type OtpService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewOtpService(db *gorm.DB) *OtpService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &OtpService{
		db:     db,
		client: client,
		from:   os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

// Send replaces any previous code for the phone with a fresh one and texts
// it out.
func (s *OtpService) Send(phone string) error {
	code := utils.GenerateOtp()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("phone = ?", phone).Delete(&models.Otp{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Otp{Phone: phone, Code: code}).Error
	})
	if err != nil {
		return err
	}

	return s.deliver(phone, code)
}

func (s *OtpService) deliver(phone, code string) error {
	if s.client == nil {
		// No gateway configured; the code still lands in the table so
		// local environments can verify against it.
		log.Printf("Twilio not configured, skipping SMS to %s", phone)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody("Your HomeServe verification code is " + code)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send OTP to %s: %v", phone, err)
		return err
	}
	if resp.Sid != nil {
		log.Printf("OTP sent to %s, SID: %s", phone, *resp.Sid)
	}
	return nil
}

// Verify checks the code for a phone, enforces the validity window and marks
// the matching customer as verified. The code is consumed either way once it
// matches.
func (s *OtpService) Verify(phone, code string) error {
	var record models.Otp
	err := s.db.Where("phone = ? AND code = ?", phone, code).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: invalid OTP or phone number", ErrNotFound)
		}
		return err
	}

	if time.Since(record.CreatedAt) > otpValidity {
		return fmt.Errorf("%w: OTP expired", ErrExpired)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Customer{}).
			Where("phone = ?", phone).
			Update("otp_verified", true).Error; err != nil {
			return err
		}
		return tx.Delete(&record).Error
	})
}
