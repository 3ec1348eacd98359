package booking

import (
	"context"
	"testing"
	"time"

	"hotelops/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountConflicts(ctx context.Context, roomID int64, checkin, checkout time.Time, excludeID int64) (int64, error) {
	args := m.Called(ctx, roomID, checkin, checkout, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByIDLocked(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

// txStub runs the function directly, without a real transaction.
type txStub struct{}

func (txStub) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func room101(status domain.RoomStatus) *domain.Room {
	return &domain.Room{
		ID:         10,
		BuildingID: 1,
		RoomTypeID: 2,
		RoomNumber: "101",
		Status:     status,
		RoomType: &domain.RoomType{
			ID:            2,
			Name:          "Standard",
			PricePerNight: decimal.RequireFromString("2000.00"),
		},
	}
}

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	checkin := date("2025-06-01")
	checkout := date("2025-06-04")
	mockRooms.On("GetByIDLocked", mock.Anything, int64(10)).Return(room101(domain.RoomFree), nil)
	mockBookings.On("CountConflicts", mock.Anything, int64(10), checkin, checkout, int64(0)).Return(int64(0), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockRooms, txStub{})

	b, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:     7,
		RoomID:       10,
		CheckinDate:  "2025-06-01",
		CheckoutDate: "2025-06-04",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, domain.BookingNew, b.Status)
	// 3 nights at 2000.00
	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("6000.00")),
		"expected 6000.00, got %s", b.TotalPrice)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_EqualDates(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository), txStub{})

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:     7,
		RoomID:       10,
		CheckinDate:  "2025-06-01",
		CheckoutDate: "2025-06-01",
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestService_Create_ReversedDates(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository), txStub{})

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:     7,
		RoomID:       10,
		CheckinDate:  "2025-06-04",
		CheckoutDate: "2025-06-01",
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestService_Create_BadDateFormat(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository), txStub{})

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:     7,
		RoomID:       10,
		CheckinDate:  "01.06.2025",
		CheckoutDate: "2025-06-04",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_Conflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	// Existing confirmed booking 2025-06-01..04; request 03..05 overlaps.
	checkin := date("2025-06-03")
	checkout := date("2025-06-05")
	mockRooms.On("GetByIDLocked", mock.Anything, int64(10)).Return(room101(domain.RoomFree), nil)
	mockBookings.On("CountConflicts", mock.Anything, int64(10), checkin, checkout, int64(0)).Return(int64(1), nil)

	service := NewService(mockBookings, mockRooms, txStub{})

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:     7,
		RoomID:       10,
		CheckinDate:  "2025-06-03",
		CheckoutDate: "2025-06-05",
	})

	assert.ErrorIs(t, err, ErrRoomUnavailable)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_TouchingBoundaryAllowed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	// Same-day turnover: existing stay ends 2025-06-04, new one starts then.
	checkin := date("2025-06-04")
	checkout := date("2025-06-06")
	mockRooms.On("GetByIDLocked", mock.Anything, int64(10)).Return(room101(domain.RoomFree), nil)
	mockBookings.On("CountConflicts", mock.Anything, int64(10), checkin, checkout, int64(0)).Return(int64(0), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockRooms, txStub{})

	b, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:     7,
		RoomID:       10,
		CheckinDate:  "2025-06-04",
		CheckoutDate: "2025-06-06",
	})

	assert.NoError(t, err)
	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("4000.00")))
}

func TestService_Update_ExcludesOwnBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	existing := &domain.Booking{
		ID:           123,
		ClientID:     7,
		RoomID:       10,
		CheckinDate:  date("2025-06-01"),
		CheckoutDate: date("2025-06-04"),
		Status:       domain.BookingConfirmed,
	}
	mockBookings.On("GetByID", mock.Anything, int64(123)).Return(existing, nil)
	mockRooms.On("GetByIDLocked", mock.Anything, int64(10)).Return(room101(domain.RoomFree), nil)
	// Re-validation must skip the booking's own row.
	mockBookings.On("CountConflicts", mock.Anything, int64(10), date("2025-06-02"), date("2025-06-05"), int64(123)).Return(int64(0), nil)
	mockBookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockRooms, txStub{})

	b, err := service.Update(context.Background(), 123, UpdateBookingRequest{
		CheckinDate:  "2025-06-02",
		CheckoutDate: "2025-06-05",
	})

	assert.NoError(t, err)
	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("6000.00")))
	mockBookings.AssertExpectations(t)
}

func TestService_Cancel_Unconditional(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	// A paid booking can still be cancelled; no state guard exists.
	mockBookings.On("UpdateStatus", mock.Anything, int64(55), domain.BookingCancelled).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(55)).Return(&domain.Booking{
		ID:     55,
		Status: domain.BookingCancelled,
	}, nil)

	service := NewService(mockBookings, new(MockRoomRepository), txStub{})

	b, err := service.Cancel(context.Background(), 55)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestService_UpdateStatus_ConfirmRejectsOverlap(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	// Two new bookings share room 10 for the same nights; the first was
	// already confirmed, so confirming the second must fail.
	second := &domain.Booking{
		ID:           2,
		ClientID:     8,
		RoomID:       10,
		CheckinDate:  date("2025-06-01"),
		CheckoutDate: date("2025-06-03"),
		Status:       domain.BookingNew,
	}
	mockBookings.On("GetByID", mock.Anything, int64(2)).Return(second, nil)
	mockRooms.On("GetByIDLocked", mock.Anything, int64(10)).Return(room101(domain.RoomFree), nil)
	mockBookings.On("CountConflicts", mock.Anything, int64(10), date("2025-06-01"), date("2025-06-03"), int64(2)).Return(int64(1), nil)

	service := NewService(mockBookings, mockRooms, txStub{})

	_, err := service.UpdateStatus(context.Background(), 2, "confirmed")

	assert.ErrorIs(t, err, ErrRoomUnavailable)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_ConfirmWithoutConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	b := &domain.Booking{
		ID:           2,
		RoomID:       10,
		CheckinDate:  date("2025-06-01"),
		CheckoutDate: date("2025-06-03"),
		Status:       domain.BookingNew,
	}
	mockBookings.On("GetByID", mock.Anything, int64(2)).Return(b, nil)
	mockRooms.On("GetByIDLocked", mock.Anything, int64(10)).Return(room101(domain.RoomFree), nil)
	mockBookings.On("CountConflicts", mock.Anything, int64(10), date("2025-06-01"), date("2025-06-03"), int64(2)).Return(int64(0), nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(2), domain.BookingConfirmed).Return(nil)

	service := NewService(mockBookings, mockRooms, txStub{})

	_, err := service.UpdateStatus(context.Background(), 2, "confirmed")

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_UpdateStatus_CancelSkipsOverlapScan(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	// Leaving the blocking set never needs the overlap re-check.
	mockBookings.On("UpdateStatus", mock.Anything, int64(2), domain.BookingCancelled).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(2)).Return(&domain.Booking{
		ID:     2,
		Status: domain.BookingCancelled,
	}, nil)

	service := NewService(mockBookings, new(MockRoomRepository), txStub{})

	_, err := service.UpdateStatus(context.Background(), 2, "cancelled")

	assert.NoError(t, err)
	mockBookings.AssertNotCalled(t, "CountConflicts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_RejectsUnknown(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository), txStub{})

	_, err := service.UpdateStatus(context.Background(), 55, "parked")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_IsRoomAvailable_RoomNotFree(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(room101(domain.RoomCleaning), nil)

	service := NewService(mockBookings, mockRooms, txStub{})

	ok, err := service.IsRoomAvailable(context.Background(), 10, date("2025-06-01"), date("2025-06-04"))

	assert.NoError(t, err)
	assert.False(t, ok)
	mockBookings.AssertNotCalled(t, "CountConflicts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_IsRoomAvailable_FreeNoConflicts(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(room101(domain.RoomFree), nil)
	mockBookings.On("CountConflicts", mock.Anything, int64(10), date("2025-06-01"), date("2025-06-04"), int64(0)).Return(int64(0), nil)

	service := NewService(mockBookings, mockRooms, txStub{})

	ok, err := service.IsRoomAvailable(context.Background(), 10, date("2025-06-01"), date("2025-06-04"))

	assert.NoError(t, err)
	assert.True(t, ok)
}
