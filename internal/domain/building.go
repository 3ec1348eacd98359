package domain

import "time"

type Address struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	City        string `json:"city" validate:"required"`
	Street      string `json:"street" validate:"required"`
	HouseNumber string `json:"house_number" gorm:"size:20" validate:"required"`
}

func (Address) TableName() string { return "addresses" }

type Building struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" validate:"required"`
	AddressID   int64     `json:"address_id" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Capacity    int       `json:"capacity" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Address *Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	Rooms   []Room   `json:"rooms,omitempty" gorm:"foreignKey:BuildingID"`
}

func (Building) TableName() string { return "buildings" }
