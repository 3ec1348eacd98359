package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type BuildingRepository struct {
	db *gorm.DB
}

func NewBuildingRepository(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

func (r *BuildingRepository) Create(ctx context.Context, b *domain.Building) error {
	return translate(conn(ctx, r.db).Create(b).Error)
}

func (r *BuildingRepository) GetByID(ctx context.Context, id int64) (*domain.Building, error) {
	var b domain.Building
	err := conn(ctx, r.db).
		Preload("Address").
		Preload("Rooms").
		First(&b, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BuildingRepository) List(ctx context.Context) ([]domain.Building, error) {
	var out []domain.Building
	err := conn(ctx, r.db).
		Preload("Address").
		Order("name").
		Find(&out).Error
	return out, translate(err)
}

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, a *domain.Address) error {
	return translate(conn(ctx, r.db).Create(a).Error)
}

func (r *AddressRepository) List(ctx context.Context) ([]domain.Address, error) {
	var out []domain.Address
	err := conn(ctx, r.db).Order("city, street").Find(&out).Error
	return out, translate(err)
}
