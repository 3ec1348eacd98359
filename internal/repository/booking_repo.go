package repository

import (
	"context"
	"time"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return translate(conn(ctx, r.db).Create(b).Error)
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return translate(conn(ctx, r.db).Save(b).Error)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := conn(ctx, r.db).
		Preload("Client").
		Preload("Room").
		Preload("Room.RoomType").
		First(&b, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := conn(ctx, r.db).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&out).Error
	return out, translate(err)
}

// CountConflicts counts confirmed/paid bookings on the room whose
// [checkin, checkout) range intersects the given one. Boundary-touching
// ranges do not count, so same-day turnover is allowed. excludeID skips the
// booking's own row during re-validation on update.
func (r *BookingRepository) CountConflicts(ctx context.Context, roomID int64, checkin, checkout time.Time, excludeID int64) (int64, error) {
	var cnt int64
	q := conn(ctx, r.db).
		Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []domain.BookingStatus{domain.BookingConfirmed, domain.BookingPaid}).
		Where("checkin_date < ? AND checkout_date > ?", checkout, checkin)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&cnt).Error
	return cnt, translate(err)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	res := conn(ctx, r.db).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
