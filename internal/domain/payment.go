package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodOnline PaymentMethod = "online"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

type PaymentStatus string

const (
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPaid, PaymentCancelled, PaymentRefunded:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

type Payment struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	BookingID   int64           `json:"booking_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(10,2)" validate:"required"`
	PaymentDate time.Time       `json:"payment_date" gorm:"type:date"`
	Method      PaymentMethod   `json:"method" gorm:"size:50" validate:"required"`
	Status      PaymentStatus   `json:"status" gorm:"size:50;default:paid"`
	CreatedAt   time.Time       `json:"created_at"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

func (Payment) TableName() string { return "payments" }
