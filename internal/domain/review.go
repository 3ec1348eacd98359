package domain

import "time"

type Review struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	ClientID        int64     `json:"client_id" validate:"required"`
	BookingID       *int64    `json:"booking_id,omitempty"`
	ReviewText      string    `json:"review_text" gorm:"type:text" validate:"required"`
	Rating          int       `json:"rating" validate:"required,gte=1,lte=5"`
	PublicationDate time.Time `json:"publication_date" gorm:"type:date"`

	Client  *Client  `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

func (Review) TableName() string { return "reviews" }
