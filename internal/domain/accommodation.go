package domain

import "time"

type AccommodationStatus string

const (
	AccommodationStaying    AccommodationStatus = "staying"
	AccommodationCheckedOut AccommodationStatus = "checked_out"
)

// Accommodation is the realized stay tied one-to-one to a booking. The
// unique index on booking_id is what makes a second check-in fail at
// commit time.
type Accommodation struct {
	ID                 int64               `json:"id" gorm:"primaryKey"`
	BookingID          int64               `json:"booking_id" gorm:"uniqueIndex" validate:"required"`
	ActualCheckinDate  time.Time           `json:"actual_checkin_date" gorm:"type:date" validate:"required"`
	ActualCheckoutDate *time.Time          `json:"actual_checkout_date,omitempty" gorm:"type:date"`
	Status             AccommodationStatus `json:"status" gorm:"size:50;default:staying"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

func (Accommodation) TableName() string { return "accommodations" }
