package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingNew       BookingStatus = "new"
	BookingConfirmed BookingStatus = "confirmed"
	BookingPaid      BookingStatus = "paid"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingNew, BookingConfirmed, BookingPaid, BookingCancelled, BookingCompleted:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// ConflictStatuses are the booking statuses that block a room for a date
// range. New and cancelled bookings never conflict.
var ConflictStatuses = []BookingStatus{BookingConfirmed, BookingPaid}

type Booking struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	ClientID     int64           `json:"client_id" validate:"required"`
	RoomID       int64           `json:"room_id" validate:"required"`
	CheckinDate  time.Time       `json:"checkin_date" gorm:"type:date" validate:"required"`
	CheckoutDate time.Time       `json:"checkout_date" gorm:"type:date" validate:"required"`
	TotalPrice   decimal.Decimal `json:"total_price" gorm:"type:numeric(10,2)"`
	Status       BookingStatus   `json:"status" gorm:"size:50;default:new"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Room   *Room   `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (Booking) TableName() string { return "bookings" }

// Nights returns the booked length of stay.
func (b *Booking) Nights() int {
	return Nights(b.CheckinDate, b.CheckoutDate)
}
