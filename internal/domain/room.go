package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomFree        RoomStatus = "free"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCleaning    RoomStatus = "cleaning"
)

func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomFree, RoomOccupied, RoomMaintenance, RoomCleaning:
		return RoomStatus(s), nil
	}
	return "", fmt.Errorf("unknown room status %q", s)
}

type RoomType struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" validate:"required"`
	PricePerNight decimal.Decimal `json:"price_per_night" gorm:"type:numeric(10,2)" validate:"required"`
}

func (RoomType) TableName() string { return "room_types" }

type Room struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	BuildingID int64      `json:"building_id" gorm:"uniqueIndex:idx_building_room_number" validate:"required"`
	RoomTypeID int64      `json:"room_type_id" validate:"required"`
	RoomNumber string     `json:"room_number" gorm:"uniqueIndex:idx_building_room_number;size:20" validate:"required"`
	Status     RoomStatus `json:"status" gorm:"size:50;default:free"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Building *Building `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
	RoomType *RoomType `json:"room_type,omitempty" gorm:"foreignKey:RoomTypeID"`
}

func (Room) TableName() string { return "rooms" }
