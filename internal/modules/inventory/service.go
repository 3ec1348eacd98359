package inventory

import (
	"context"

	"hotelops/internal/domain"
)

type Service struct {
	inventory inventoryRepo
	buildings buildingReader
	products  productReader
	services  serviceReader
}

func NewService(inventory inventoryRepo, buildings buildingReader, products productReader, services serviceReader) *Service {
	return &Service{
		inventory: inventory,
		buildings: buildings,
		products:  products,
		services:  services,
	}
}

// SetProductAvailability upserts the stock level for a (building, product)
// pair. Negative levels are rejected; zero is a valid "sold out" state.
func (s *Service) SetProductAvailability(ctx context.Context, buildingID, productID int64, available int) (*domain.BuildingProduct, error) {
	if available < 0 {
		return nil, ErrValidation
	}
	if _, err := s.buildings.GetByID(ctx, buildingID); err != nil {
		return nil, err
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.inventory.SetProductAvailability(ctx, buildingID, productID, available)
}

func (s *Service) SetServiceActive(ctx context.Context, buildingID, serviceID int64, active bool) (*domain.BuildingService, error) {
	if _, err := s.buildings.GetByID(ctx, buildingID); err != nil {
		return nil, err
	}
	if _, err := s.services.GetByID(ctx, serviceID); err != nil {
		return nil, err
	}
	return s.inventory.SetServiceActive(ctx, buildingID, serviceID, active)
}

func (s *Service) GetProductStock(ctx context.Context, buildingID, productID int64) (*domain.BuildingProduct, error) {
	return s.inventory.GetProductStock(ctx, buildingID, productID)
}

func (s *Service) GetBuildingInventory(ctx context.Context, buildingID int64) (*BuildingInventory, error) {
	if _, err := s.buildings.GetByID(ctx, buildingID); err != nil {
		return nil, err
	}
	products, err := s.inventory.ListBuildingProducts(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	services, err := s.inventory.ListBuildingServices(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	return &BuildingInventory{
		BuildingID: buildingID,
		Products:   products,
		Services:   services,
	}, nil
}
