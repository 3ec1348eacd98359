package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) SetProductAvailability(ctx context.Context, buildingID, productID int64, available int) (*domain.BuildingProduct, error) {
	row := domain.BuildingProduct{
		BuildingID: buildingID,
		ProductID:  productID,
		Available:  available,
	}
	err := conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "building_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"available"}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *InventoryRepository) SetServiceActive(ctx context.Context, buildingID, serviceID int64, active bool) (*domain.BuildingService, error) {
	row := domain.BuildingService{
		BuildingID: buildingID,
		ServiceID:  serviceID,
		IsActive:   active,
	}
	err := conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "building_id"}, {Name: "service_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_active"}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *InventoryRepository) GetProductStock(ctx context.Context, buildingID, productID int64) (*domain.BuildingProduct, error) {
	var row domain.BuildingProduct
	err := conn(ctx, r.db).
		Where("building_id = ? AND product_id = ?", buildingID, productID).
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// DecrementStock takes qty units off the (building, product) stock row in a
// single guarded UPDATE. It reports false, without error, when the row is
// missing or holds fewer than qty units; the caller decides what that means.
func (r *InventoryRepository) DecrementStock(ctx context.Context, buildingID, productID int64, qty int) (bool, error) {
	res := conn(ctx, r.db).
		Model(&domain.BuildingProduct{}).
		Where("building_id = ? AND product_id = ? AND available >= ?", buildingID, productID, qty).
		Update("available", gorm.Expr("available - ?", qty))
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *InventoryRepository) ListBuildingProducts(ctx context.Context, buildingID int64) ([]domain.BuildingProduct, error) {
	var out []domain.BuildingProduct
	err := conn(ctx, r.db).
		Preload("Product").
		Where("building_id = ?", buildingID).
		Find(&out).Error
	return out, translate(err)
}

func (r *InventoryRepository) ListBuildingServices(ctx context.Context, buildingID int64) ([]domain.BuildingService, error) {
	var out []domain.BuildingService
	err := conn(ctx, r.db).
		Preload("Service").
		Where("building_id = ?", buildingID).
		Find(&out).Error
	return out, translate(err)
}
