package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"homeserve-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Customer struct {
	ID       uint      `gorm:"primary_key" json:"id"`
	UID      uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"uid"`
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `gorm:"size:15;uniqueIndex;not null" json:"phone"`
	Email    string    `json:"email"`
	Password string    `gorm:"not null" json:"-"`

	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`

	OtpVerified bool            `gorm:"default:false" json:"otpVerified"`
	Wallet      decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"wallet"`
	IsActive    bool            `gorm:"default:true" json:"isActive"`
	LastLogin   *time.Time      `json:"lastLogin"`

	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UID and hash password before creating
func (u *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	u.UID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// Otp holds the single live verification code for a phone number.
type Otp struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Phone     string    `gorm:"size:15;index;not null" json:"phone"`
	Code      string    `gorm:"size:10;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Custom JSONB type for schemaless booking details
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, &j)
	case string:
		return json.Unmarshal([]byte(v), &j)
	default:
		return errors.New("type assertion to []byte failed")
	}
}
