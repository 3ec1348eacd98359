package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CreateProductOrder(ctx context.Context, o *domain.ProductOrder) error {
	return translate(conn(ctx, r.db).Create(o).Error)
}

func (r *OrderRepository) CreateServiceOrder(ctx context.Context, o *domain.ServiceOrder) error {
	return translate(conn(ctx, r.db).Create(o).Error)
}

func (r *OrderRepository) ListProductOrders(ctx context.Context, accommodationID int64) ([]domain.ProductOrder, error) {
	var out []domain.ProductOrder
	err := conn(ctx, r.db).
		Preload("Product").
		Where("accommodation_id = ?", accommodationID).
		Order("order_date DESC").
		Find(&out).Error
	return out, translate(err)
}

func (r *OrderRepository) ListServiceOrders(ctx context.Context, accommodationID int64) ([]domain.ServiceOrder, error) {
	var out []domain.ServiceOrder
	err := conn(ctx, r.db).
		Preload("Service").
		Where("accommodation_id = ?", accommodationID).
		Order("order_date DESC").
		Find(&out).Error
	return out, translate(err)
}
