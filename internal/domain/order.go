package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductOrder struct {
	ID              int64           `json:"id" gorm:"primaryKey"`
	AccommodationID int64           `json:"accommodation_id" validate:"required"`
	ProductID       int64           `json:"product_id" validate:"required"`
	OrderDate       time.Time       `json:"order_date" gorm:"type:date"`
	Quantity        int             `json:"quantity" validate:"required,gte=1"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:numeric(10,2)"`
	CreatedAt       time.Time       `json:"created_at"`

	Accommodation *Accommodation `json:"accommodation,omitempty" gorm:"foreignKey:AccommodationID"`
	Product       *Product       `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (ProductOrder) TableName() string { return "product_orders" }

type ServiceOrder struct {
	ID              int64           `json:"id" gorm:"primaryKey"`
	AccommodationID int64           `json:"accommodation_id" validate:"required"`
	ServiceID       int64           `json:"service_id" validate:"required"`
	OrderDate       time.Time       `json:"order_date" gorm:"type:date"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:numeric(10,2)"`
	CreatedAt       time.Time       `json:"created_at"`

	Accommodation *Accommodation `json:"accommodation,omitempty" gorm:"foreignKey:AccommodationID"`
	Service       *Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

func (ServiceOrder) TableName() string { return "service_orders" }
