package inventory

import (
	"context"

	"hotelops/internal/domain"
)

type inventoryRepo interface {
	SetProductAvailability(ctx context.Context, buildingID, productID int64, available int) (*domain.BuildingProduct, error)
	SetServiceActive(ctx context.Context, buildingID, serviceID int64, active bool) (*domain.BuildingService, error)
	GetProductStock(ctx context.Context, buildingID, productID int64) (*domain.BuildingProduct, error)
	ListBuildingProducts(ctx context.Context, buildingID int64) ([]domain.BuildingProduct, error)
	ListBuildingServices(ctx context.Context, buildingID int64) ([]domain.BuildingService, error)
}

type buildingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Building, error)
}

type productReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type serviceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
