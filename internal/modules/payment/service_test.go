package payment

import (
	"context"
	"errors"
	"testing"

	"hotelops/internal/domain"

	"github.com/shopspring/decimal"
)

type mockBookingReader struct {
	booking *domain.Booking
}

func (m *mockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.booking == nil || m.booking.ID != id {
		return nil, errors.New("not found")
	}
	return m.booking, nil
}

type mockBookingWriter struct {
	statusCalls []domain.BookingStatus
}

func (m *mockBookingWriter) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	m.statusCalls = append(m.statusCalls, status)
	return nil
}

type mockPaymentRepo struct {
	created []*domain.Payment
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	p.ID = int64(len(m.created) + 1)
	m.created = append(m.created, p)
	return nil
}

func (m *mockPaymentRepo) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	out := make([]domain.Payment, 0, len(m.created))
	for _, p := range m.created {
		if p.BookingID == bookingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type txStub struct{}

func (txStub) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func booking6000() *domain.Booking {
	return &domain.Booking{
		ID:         1,
		Status:     domain.BookingConfirmed,
		TotalPrice: decimal.RequireFromString("6000.00"),
	}
}

func TestRecord_FullAmountMarksBookingPaid(t *testing.T) {
	repo := &mockPaymentRepo{}
	writer := &mockBookingWriter{}
	svc := NewService(repo, &mockBookingReader{booking: booking6000()}, writer, txStub{})

	p, err := svc.Record(context.Background(), RecordPaymentRequest{
		BookingID: 1,
		Amount:    decimal.RequireFromString("6000.00"),
		Method:    "card",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if p.Status != domain.PaymentPaid {
		t.Fatalf("expected paid status, got %s", p.Status)
	}
	if len(writer.statusCalls) != 1 || writer.statusCalls[0] != domain.BookingPaid {
		t.Fatalf("expected booking moved to paid, got %v", writer.statusCalls)
	}
}

func TestRecord_AmountExceedsTotal(t *testing.T) {
	repo := &mockPaymentRepo{}
	writer := &mockBookingWriter{}
	svc := NewService(repo, &mockBookingReader{booking: booking6000()}, writer, txStub{})

	// One kopeck over the booking total.
	_, err := svc.Record(context.Background(), RecordPaymentRequest{
		BookingID: 1,
		Amount:    decimal.RequireFromString("6000.01"),
		Method:    "card",
	})
	if !errors.Is(err, ErrAmountExceedsTotal) {
		t.Fatalf("expected ErrAmountExceedsTotal, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no payment persisted")
	}
	if len(writer.statusCalls) != 0 {
		t.Fatalf("expected booking status untouched")
	}
}

func TestRecord_NonPaidStatusLeavesBookingAlone(t *testing.T) {
	repo := &mockPaymentRepo{}
	writer := &mockBookingWriter{}
	svc := NewService(repo, &mockBookingReader{booking: booking6000()}, writer, txStub{})

	p, err := svc.Record(context.Background(), RecordPaymentRequest{
		BookingID: 1,
		Amount:    decimal.RequireFromString("1000.00"),
		Method:    "cash",
		Status:    "refunded",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if p.Status != domain.PaymentRefunded {
		t.Fatalf("expected refunded, got %s", p.Status)
	}
	if len(writer.statusCalls) != 0 {
		t.Fatalf("refunded payment must not touch booking status")
	}
}

func TestRecord_UnknownMethod(t *testing.T) {
	svc := NewService(&mockPaymentRepo{}, &mockBookingReader{booking: booking6000()}, &mockBookingWriter{}, txStub{})

	_, err := svc.Record(context.Background(), RecordPaymentRequest{
		BookingID: 1,
		Amount:    decimal.RequireFromString("100.00"),
		Method:    "barter",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
