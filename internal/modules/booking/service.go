package booking

import (
	"context"
	"fmt"
	"time"

	"hotelops/internal/domain"

	"github.com/shopspring/decimal"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	tx       TxRunner
}

func NewService(bookings BookingRepository, rooms RoomRepository, tx TxRunner) *Service {
	return &Service{bookings: bookings, rooms: rooms, tx: tx}
}

// IsRoomAvailable reports whether the room can be booked for
// [checkin, checkout). It is false when the room is not free or when any
// confirmed/paid booking overlaps the range. Read-only; the authoritative
// guard runs again inside Create's transaction.
func (s *Service) IsRoomAvailable(ctx context.Context, roomID int64, checkin, checkout time.Time) (bool, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return false, err
	}
	if room.Status != domain.RoomFree {
		return false, nil
	}
	cnt, err := s.bookings.CountConflicts(ctx, roomID, checkin, checkout, 0)
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkin, checkout, err := parseRange(req.CheckinDate, req.CheckoutDate)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ClientID:     req.ClientID,
		RoomID:       req.RoomID,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		Status:       domain.BookingNew,
	}

	// The room row lock, conflict check and insert run in one transaction,
	// so two concurrent requests for overlapping ranges serialize on the
	// room and the loser sees the winner's row in the overlap scan.
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		room, err := s.rooms.GetByIDLocked(ctx, req.RoomID)
		if err != nil {
			return err
		}

		cnt, err := s.bookings.CountConflicts(ctx, req.RoomID, checkin, checkout, 0)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrRoomUnavailable
		}

		total, err := priceFor(room, checkin, checkout)
		if err != nil {
			return err
		}
		b.TotalPrice = total

		return s.bookings.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update moves a booking to new dates, re-running the date-order and
// overlap validation with the booking's own row excluded from the scan.
// The total price is recomputed from the new range.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	checkin, checkout, err := parseRange(req.CheckinDate, req.CheckoutDate)
	if err != nil {
		return nil, err
	}

	var updated *domain.Booking
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err := s.bookings.GetByID(ctx, id)
		if err != nil {
			return err
		}

		room, err := s.rooms.GetByIDLocked(ctx, b.RoomID)
		if err != nil {
			return err
		}

		cnt, err := s.bookings.CountConflicts(ctx, b.RoomID, checkin, checkout, b.ID)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrRoomUnavailable
		}

		total, err := priceFor(room, checkin, checkout)
		if err != nil {
			return err
		}

		b.CheckinDate = checkin
		b.CheckoutDate = checkout
		b.TotalPrice = total
		if err := s.bookings.Update(ctx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus moves a booking to a new status. Entering confirmed or paid
// makes the booking start blocking its room, so the overlap scan reruns
// inside a transaction holding the room row lock; without it, two
// overlapping new bookings could both be confirmed.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	st, err := domain.ParseBookingStatus(status)
	if err != nil {
		return nil, ErrValidation
	}

	if st == domain.BookingConfirmed || st == domain.BookingPaid {
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			b, err := s.bookings.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if _, err := s.rooms.GetByIDLocked(ctx, b.RoomID); err != nil {
				return err
			}
			cnt, err := s.bookings.CountConflicts(ctx, b.RoomID, b.CheckinDate, b.CheckoutDate, b.ID)
			if err != nil {
				return err
			}
			if cnt > 0 {
				return ErrRoomUnavailable
			}
			return s.bookings.UpdateStatus(ctx, id, st)
		})
	} else {
		err = s.bookings.UpdateStatus(ctx, id, st)
	}
	if err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, id)
}

// Cancel sets the booking to cancelled unconditionally; there is no guard
// against cancelling paid or completed bookings.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	if err := s.bookings.UpdateStatus(ctx, id, domain.BookingCancelled); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	return s.bookings.ListByClient(ctx, clientID)
}

func priceFor(room *domain.Room, checkin, checkout time.Time) (decimal.Decimal, error) {
	if room.RoomType == nil {
		return decimal.Zero, fmt.Errorf("room %d has no room type loaded", room.ID)
	}
	nights := domain.Nights(checkin, checkout)
	return room.RoomType.PricePerNight.Mul(decimal.NewFromInt(int64(nights))), nil
}

func parseRange(checkinStr, checkoutStr string) (time.Time, time.Time, error) {
	checkin, err := domain.ParseDate(checkinStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	checkout, err := domain.ParseDate(checkoutStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	if !checkin.Before(checkout) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return checkin, checkout, nil
}
