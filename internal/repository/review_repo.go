package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return translate(conn(ctx, r.db).Create(rv).Error)
}

func (r *ReviewRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Review, error) {
	var out []domain.Review
	err := conn(ctx, r.db).
		Where("client_id = ?", clientID).
		Order("publication_date DESC").
		Find(&out).Error
	return out, translate(err)
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	err := conn(ctx, r.db).
		Preload("Client").
		Order("publication_date DESC").
		Find(&out).Error
	return out, translate(err)
}
