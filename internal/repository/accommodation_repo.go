package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type AccommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

func (r *AccommodationRepository) Create(ctx context.Context, a *domain.Accommodation) error {
	return translate(conn(ctx, r.db).Create(a).Error)
}

func (r *AccommodationRepository) Update(ctx context.Context, a *domain.Accommodation) error {
	return translate(conn(ctx, r.db).Save(a).Error)
}

func (r *AccommodationRepository) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	var a domain.Accommodation
	err := conn(ctx, r.db).
		Preload("Booking").
		Preload("Booking.Room").
		First(&a, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AccommodationRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Accommodation, error) {
	var a domain.Accommodation
	err := conn(ctx, r.db).
		Where("booking_id = ?", bookingID).
		First(&a).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AccommodationRepository) ListActive(ctx context.Context) ([]domain.Accommodation, error) {
	var out []domain.Accommodation
	err := conn(ctx, r.db).
		Preload("Booking").
		Where("status = ?", domain.AccommodationStaying).
		Find(&out).Error
	return out, translate(err)
}
