package domain

import "time"

// Client is a hotel guest. Phone, email and passport data each identify a
// client on their own, so all three carry unique indexes.
type Client struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	FirstName        string    `json:"first_name" validate:"required"`
	LastName         string    `json:"last_name" validate:"required"`
	MiddleName       string    `json:"middle_name,omitempty"`
	Phone            string    `json:"phone" gorm:"uniqueIndex;size:20" validate:"required"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:254" validate:"required,email"`
	PassportData     string    `json:"passport_data" gorm:"uniqueIndex;size:50" validate:"required"`
	RegistrationDate time.Time `json:"registration_date" gorm:"type:date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }
