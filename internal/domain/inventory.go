package domain

// BuildingProduct tracks how many units of a product a building has in
// stock. One row per (building, product) pair.
type BuildingProduct struct {
	ID         int64 `json:"id" gorm:"primaryKey"`
	BuildingID int64 `json:"building_id" gorm:"uniqueIndex:idx_building_product" validate:"required"`
	ProductID  int64 `json:"product_id" gorm:"uniqueIndex:idx_building_product" validate:"required"`
	Available  int   `json:"available" validate:"gte=0"`

	Building *Building `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
	Product  *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (BuildingProduct) TableName() string { return "building_products" }

// BuildingService flags whether a service is offered at a building.
type BuildingService struct {
	ID         int64 `json:"id" gorm:"primaryKey"`
	BuildingID int64 `json:"building_id" gorm:"uniqueIndex:idx_building_service" validate:"required"`
	ServiceID  int64 `json:"service_id" gorm:"uniqueIndex:idx_building_service" validate:"required"`
	IsActive   bool  `json:"is_active" gorm:"default:true"`

	Building *Building `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
	Service  *Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

func (BuildingService) TableName() string { return "building_services" }
