package directory

import "github.com/shopspring/decimal"

type CreateClientRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	MiddleName   string `json:"middle_name"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PassportData string `json:"passport_data" binding:"required"`
}

type UpdateClientRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	MiddleName   string `json:"middle_name"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PassportData string `json:"passport_data" binding:"required"`
}

type CreateAddressRequest struct {
	City        string `json:"city" binding:"required"`
	Street      string `json:"street" binding:"required"`
	HouseNumber string `json:"house_number" binding:"required"`
}

type CreateBuildingRequest struct {
	Name        string `json:"name" binding:"required"`
	AddressID   int64  `json:"address_id" binding:"required"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
}

type CreateRoomTypeRequest struct {
	Name          string          `json:"name" binding:"required"`
	PricePerNight decimal.Decimal `json:"price_per_night" binding:"required"`
}

type CreateRoomRequest struct {
	BuildingID int64  `json:"building_id" binding:"required"`
	RoomTypeID int64  `json:"room_type_id" binding:"required"`
	RoomNumber string `json:"room_number" binding:"required"`
}

type UpdateRoomRequest struct {
	RoomTypeID int64  `json:"room_type_id" binding:"required"`
	RoomNumber string `json:"room_number" binding:"required"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}
