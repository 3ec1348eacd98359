package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2)" validate:"required"`
}

func (Product) TableName() string { return "products" }

type Service struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2)" validate:"required"`
}

func (Service) TableName() string { return "services" }
