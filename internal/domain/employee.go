package domain

import "time"

type Position struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" validate:"required"`
}

func (Position) TableName() string { return "positions" }

type Employee struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	FirstName  string    `json:"first_name" validate:"required"`
	LastName   string    `json:"last_name" validate:"required"`
	MiddleName string    `json:"middle_name,omitempty"`
	Phone      string    `json:"phone" gorm:"uniqueIndex;size:20" validate:"required"`
	BuildingID int64     `json:"building_id" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Building  *Building  `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
	Positions []Position `json:"positions,omitempty" gorm:"many2many:employee_positions"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) FullName() string {
	if e.MiddleName == "" {
		return e.LastName + " " + e.FirstName
	}
	return e.LastName + " " + e.FirstName + " " + e.MiddleName
}
