package stay

import (
	"context"
	"errors"

	"hotelops/internal/domain"
	"hotelops/internal/repository"
)

// Service drives the stay state machine:
//
//	confirmed booking --check-in--> staying --check-out--> checked out
//
// The room and booking status changes ride in the same transaction as the
// accommodation write, so a half-applied check-in can never be observed.
type Service struct {
	stays    accommodationRepo
	bookings bookingRepo
	rooms    roomStatusWriter
	tx       txRunner
}

func NewService(stays accommodationRepo, bookings bookingRepo, rooms roomStatusWriter, tx txRunner) *Service {
	return &Service{stays: stays, bookings: bookings, rooms: rooms, tx: tx}
}

// CheckIn turns a confirmed booking into an active stay. Side effects:
// the room becomes occupied and the booking completed. A second check-in
// for the same booking fails on the accommodations booking_id unique index.
func (s *Service) CheckIn(ctx context.Context, bookingID int64) (*domain.Accommodation, error) {
	a := &domain.Accommodation{
		BookingID:         bookingID,
		ActualCheckinDate: domain.Today(),
		Status:            domain.AccommodationStaying,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err := s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.Status != domain.BookingConfirmed {
			return ErrInvalidStateTransition
		}

		if err := s.stays.Create(ctx, a); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrAlreadyCheckedIn
			}
			return err
		}

		if err := s.rooms.UpdateStatus(ctx, b.RoomID, domain.RoomOccupied); err != nil {
			return err
		}
		return s.bookings.UpdateStatus(ctx, b.ID, domain.BookingCompleted)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CheckOut closes an active stay and leaves the room waiting for cleaning.
func (s *Service) CheckOut(ctx context.Context, accommodationID int64) (*domain.Accommodation, error) {
	var out *domain.Accommodation
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.stays.GetByID(ctx, accommodationID)
		if err != nil {
			return err
		}
		if a.Status != domain.AccommodationStaying {
			return ErrInvalidStateTransition
		}

		b, err := s.bookings.GetByID(ctx, a.BookingID)
		if err != nil {
			return err
		}

		today := domain.Today()
		a.ActualCheckoutDate = &today
		a.Status = domain.AccommodationCheckedOut
		if err := s.stays.Update(ctx, a); err != nil {
			return err
		}

		if err := s.rooms.UpdateStatus(ctx, b.RoomID, domain.RoomCleaning); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Accommodation, error) {
	return s.stays.GetByBookingID(ctx, bookingID)
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Accommodation, error) {
	return s.stays.ListActive(ctx)
}
