package booking

import (
	"context"
	"time"

	"hotelops/internal/domain"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error)
	CountConflicts(ctx context.Context, roomID int64, checkin, checkout time.Time, excludeID int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// RoomRepository reads rooms; GetByIDLocked additionally takes a row lock
// inside the caller's transaction so concurrent booking writes on the same
// room serialize before the overlap scan runs.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByIDLocked(ctx context.Context, id int64) (*domain.Room, error)
}

// TxRunner executes fn atomically; repository calls made with the ctx it
// passes in join the same transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
