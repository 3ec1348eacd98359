package inventory

import "hotelops/internal/domain"

type SetStockRequest struct {
	Available *int `json:"available" binding:"required"`
}

type SetServiceActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// BuildingInventory is the combined stock and service picture for one
// building.
type BuildingInventory struct {
	BuildingID int64                    `json:"building_id"`
	Products   []domain.BuildingProduct `json:"products"`
	Services   []domain.BuildingService `json:"services"`
}
