package payment

import (
	"context"

	"hotelops/internal/domain"
)

type Service struct {
	payments paymentRepo
	bookings bookingReader
	writer   bookingStatusWriter
	tx       txRunner
}

func NewService(payments paymentRepo, bookings bookingReader, writer bookingStatusWriter, tx txRunner) *Service {
	return &Service{payments: payments, bookings: bookings, writer: writer, tx: tx}
}

// Record persists a payment against a booking. The amount may not exceed
// the booking total; when the payment lands as paid, the booking moves to
// paid in the same transaction. Each payment is validated against the full
// total on its own; amounts do not accumulate across payments.
func (s *Service) Record(ctx context.Context, req RecordPaymentRequest) (*domain.Payment, error) {
	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		return nil, ErrValidation
	}

	status := domain.PaymentPaid
	if req.Status != "" {
		status, err = domain.ParsePaymentStatus(req.Status)
		if err != nil {
			return nil, ErrValidation
		}
	}

	paymentDate := domain.Today()
	if req.PaymentDate != "" {
		paymentDate, err = domain.ParseDate(req.PaymentDate)
		if err != nil {
			return nil, ErrValidation
		}
	}

	p := &domain.Payment{
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		Method:      method,
		Status:      status,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err := s.bookings.GetByID(ctx, req.BookingID)
		if err != nil {
			return err
		}
		if req.Amount.GreaterThan(b.TotalPrice) {
			return ErrAmountExceedsTotal
		}

		if err := s.payments.Create(ctx, p); err != nil {
			return err
		}
		if status == domain.PaymentPaid {
			return s.writer.UpdateStatus(ctx, b.ID, domain.BookingPaid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	return s.payments.ListByBooking(ctx, bookingID)
}
