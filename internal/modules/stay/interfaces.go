package stay

import (
	"context"

	"hotelops/internal/domain"
)

type accommodationRepo interface {
	Create(ctx context.Context, a *domain.Accommodation) error
	Update(ctx context.Context, a *domain.Accommodation) error
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Accommodation, error)
	ListActive(ctx context.Context) ([]domain.Accommodation, error)
}

type bookingRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type roomStatusWriter interface {
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
