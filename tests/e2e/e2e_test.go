package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/internal/database"
	"hotelops/internal/middleware"
	"hotelops/internal/modules/booking"
	"hotelops/internal/modules/directory"
	"hotelops/internal/modules/inventory"
	"hotelops/internal/modules/order"
	"hotelops/internal/modules/payment"
	"hotelops/internal/modules/review"
	"hotelops/internal/modules/staff"
	"hotelops/internal/modules/stay"
	"hotelops/internal/repository"
)

type envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	txManager := repository.NewTxManager(db)

	clientRepo := repository.NewClientRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	buildingRepo := repository.NewBuildingRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	accommodationRepo := repository.NewAccommodationRepository(db)
	productRepo := repository.NewProductRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	r := gin.New()
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api/v1")
	directory.NewHandler(directory.NewService(clientRepo, addressRepo, buildingRepo, roomTypeRepo, roomRepo, productRepo, serviceRepo)).RegisterRoutes(api)
	booking.NewHandler(booking.NewService(bookingRepo, roomRepo, txManager)).RegisterRoutes(api)
	payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, bookingRepo, txManager)).RegisterRoutes(api)
	stay.NewHandler(stay.NewService(accommodationRepo, bookingRepo, roomRepo, txManager)).RegisterRoutes(api)
	order.NewHandler(order.NewService(orderRepo, accommodationRepo, productRepo, serviceRepo, inventoryRepo, txManager)).RegisterRoutes(api)
	inventory.NewHandler(inventory.NewService(inventoryRepo, buildingRepo, productRepo, serviceRepo)).RegisterRoutes(api)
	staff.NewHandler(staff.NewService(employeeRepo, positionRepo, buildingRepo)).RegisterRoutes(api)
	review.NewHandler(review.NewService(reviewRepo, clientRepo)).RegisterRoutes(api)

	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "text/csv" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w, env
}

func unmarshal[T any](t *testing.T, env envelope, key string) T {
	t.Helper()
	var out T
	raw, ok := env.Data[key]
	require.True(t, ok, "response data has no %q key", key)
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

type clientPayload struct {
	ID int64 `json:"id"`
}

type buildingPayload struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

type roomPayload struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type bookingPayload struct {
	ID         int64  `json:"id"`
	Status     string `json:"status"`
	TotalPrice string `json:"total_price"`
}

type accommodationPayload struct {
	ID                 int64   `json:"id"`
	Status             string  `json:"status"`
	ActualCheckoutDate *string `json:"actual_checkout_date"`
}

type stockPayload struct {
	Available int `json:"available"`
}

type productOrderPayload struct {
	Quantity   int    `json:"quantity"`
	TotalPrice string `json:"total_price"`
}

type paymentPayload struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// seedBase creates the reference data every flow needs and returns the
// client and room IDs.
func seedBase(t *testing.T, r *gin.Engine) (clientID, roomID, buildingID, productID int64) {
	t.Helper()

	w, _ := do(t, r, http.MethodPost, "/api/v1/addresses", gin.H{
		"city": "Almaty", "street": "Abay Avenue", "house_number": "12",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := do(t, r, http.MethodPost, "/api/v1/buildings", gin.H{
		"name": "Main Building", "address_id": 1,
		"description": "Four-floor main block", "capacity": 80,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	building := unmarshal[buildingPayload](t, env, "building")
	require.Equal(t, "Four-floor main block", building.Description)
	require.Equal(t, 80, building.Capacity)
	buildingID = building.ID

	w, _ = do(t, r, http.MethodPost, "/api/v1/room-types", gin.H{
		"name": "Standard", "price_per_night": "2000.00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = do(t, r, http.MethodPost, "/api/v1/rooms", gin.H{
		"building_id": buildingID, "room_type_id": 1, "room_number": "101",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	room := unmarshal[roomPayload](t, env, "room")
	roomID = room.ID

	w, env = do(t, r, http.MethodPost, "/api/v1/clients", gin.H{
		"first_name": "Aigerim", "last_name": "Nurlanova",
		"phone": "+7-700-100-20-30", "email": "aigerim@example.com",
		"passport_data": "N12345678",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	client := unmarshal[clientPayload](t, env, "client")
	clientID = client.ID

	w, env = do(t, r, http.MethodPost, "/api/v1/products", gin.H{
		"name": "Mineral water", "price": "150.00",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	product := unmarshal[clientPayload](t, env, "product")
	productID = product.ID

	return clientID, roomID, buildingID, productID
}

func TestBookingStayFlow(t *testing.T) {
	r := newTestServer(t)
	clientID, roomID, buildingID, productID := seedBase(t, r)

	// Opening stock for the minibar product.
	w, _ := do(t, r, http.MethodPut,
		pathf("/api/v1/buildings/%d/products/%d/stock", buildingID, productID),
		gin.H{"available": 5})
	require.Equal(t, http.StatusOK, w.Code)

	// Free room, no bookings yet.
	w, env := do(t, r, http.MethodGet,
		pathf("/api/v1/rooms/%d/availability?checkin=2026-09-01&checkout=2026-09-03", roomID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var available bool
	require.NoError(t, json.Unmarshal(mustRaw(t, env, "available"), &available))
	assert.True(t, available)

	// Two nights at 2000.00.
	w, env = do(t, r, http.MethodPost, "/api/v1/bookings", gin.H{
		"client_id": clientID, "room_id": roomID,
		"checkin_date": "2026-09-01", "checkout_date": "2026-09-03",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	b := unmarshal[bookingPayload](t, env, "booking")
	assert.Equal(t, "new", b.Status)
	assert.Equal(t, "4000", trimZeros(b.TotalPrice))

	w, _ = do(t, r, http.MethodPatch, pathf("/api/v1/bookings/%d/status", b.ID), gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)

	// Overlapping range on the confirmed booking is rejected.
	w, env = do(t, r, http.MethodPost, "/api/v1/bookings", gin.H{
		"client_id": clientID, "room_id": roomID,
		"checkin_date": "2026-09-02", "checkout_date": "2026-09-04",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROOM_UNAVAILABLE", env.Error.Code)

	// Same-day turnover is allowed.
	w, _ = do(t, r, http.MethodGet,
		pathf("/api/v1/rooms/%d/availability?checkin=2026-09-03&checkout=2026-09-05", roomID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodPost, pathf("/api/v1/bookings/%d/check-in", b.ID), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	a := unmarshal[accommodationPayload](t, env, "accommodation")
	assert.Equal(t, "staying", a.Status)

	// Check-in side effects: room occupied, booking completed.
	w, env = do(t, r, http.MethodGet, pathf("/api/v1/rooms/%d", roomID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "occupied", unmarshal[roomPayload](t, env, "room").Status)

	w, env = do(t, r, http.MethodGet, pathf("/api/v1/bookings/%d", b.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", unmarshal[bookingPayload](t, env, "booking").Status)

	// A second check-in must fail.
	w, env = do(t, r, http.MethodPost, pathf("/api/v1/bookings/%d/check-in", b.ID), nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// Minibar order decrements the building stock.
	w, env = do(t, r, http.MethodPost,
		pathf("/api/v1/accommodations/%d/product-orders", a.ID),
		gin.H{"product_id": productID, "quantity": 3})
	require.Equal(t, http.StatusCreated, w.Code)
	po := unmarshal[productOrderPayload](t, env, "product_order")
	assert.Equal(t, 3, po.Quantity)
	assert.Equal(t, "450", trimZeros(po.TotalPrice))

	w, env = do(t, r, http.MethodGet,
		pathf("/api/v1/buildings/%d/products/%d/stock", buildingID, productID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, unmarshal[stockPayload](t, env, "stock").Available)

	// Ordering more than remains is still accepted, stock untouched.
	w, _ = do(t, r, http.MethodPost,
		pathf("/api/v1/accommodations/%d/product-orders", a.ID),
		gin.H{"product_id": productID, "quantity": 10})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = do(t, r, http.MethodGet,
		pathf("/api/v1/buildings/%d/products/%d/stock", buildingID, productID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, unmarshal[stockPayload](t, env, "stock").Available)

	w, env = do(t, r, http.MethodPost, pathf("/api/v1/accommodations/%d/check-out", a.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	checkedOut := unmarshal[accommodationPayload](t, env, "accommodation")
	assert.Equal(t, "checked_out", checkedOut.Status)
	assert.NotNil(t, checkedOut.ActualCheckoutDate)

	// Check-out side effect: room is waiting for cleaning.
	w, env = do(t, r, http.MethodGet, pathf("/api/v1/rooms/%d", roomID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cleaning", unmarshal[roomPayload](t, env, "room").Status)
}

func TestOverlappingBookingsCannotBothConfirm(t *testing.T) {
	r := newTestServer(t)
	clientID, roomID, _, _ := seedBase(t, r)

	// New bookings never block a room, so both inserts are accepted.
	w, env := do(t, r, http.MethodPost, "/api/v1/bookings", gin.H{
		"client_id": clientID, "room_id": roomID,
		"checkin_date": "2026-09-01", "checkout_date": "2026-09-03",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	first := unmarshal[bookingPayload](t, env, "booking")

	w, env = do(t, r, http.MethodPost, "/api/v1/bookings", gin.H{
		"client_id": clientID, "room_id": roomID,
		"checkin_date": "2026-09-01", "checkout_date": "2026-09-03",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	second := unmarshal[bookingPayload](t, env, "booking")

	w, _ = do(t, r, http.MethodPatch, pathf("/api/v1/bookings/%d/status", first.ID), gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)

	// Confirming the second would put two confirmed bookings on the same
	// nights; the status change must rerun the overlap scan and refuse.
	w, env = do(t, r, http.MethodPatch, pathf("/api/v1/bookings/%d/status", second.ID), gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROOM_UNAVAILABLE", env.Error.Code)

	w, env = do(t, r, http.MethodGet, pathf("/api/v1/bookings/%d", second.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new", unmarshal[bookingPayload](t, env, "booking").Status)

	// The same guard covers the paid transition.
	w, env = do(t, r, http.MethodPatch, pathf("/api/v1/bookings/%d/status", second.ID), gin.H{"status": "paid"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROOM_UNAVAILABLE", env.Error.Code)
}

func TestPaymentFlow(t *testing.T) {
	r := newTestServer(t)
	clientID, roomID, _, _ := seedBase(t, r)

	w, env := do(t, r, http.MethodPost, "/api/v1/bookings", gin.H{
		"client_id": clientID, "room_id": roomID,
		"checkin_date": "2026-10-01", "checkout_date": "2026-10-04",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	b := unmarshal[bookingPayload](t, env, "booking")
	assert.Equal(t, "6000", trimZeros(b.TotalPrice))

	// Overpaying is rejected and nothing is persisted.
	w, env = do(t, r, http.MethodPost, "/api/v1/payments", gin.H{
		"booking_id": b.ID, "amount": "6000.01", "method": "card",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AMOUNT_EXCEEDS_TOTAL", env.Error.Code)

	w, env = do(t, r, http.MethodGet, pathf("/api/v1/bookings/%d/payments", b.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payments []paymentPayload
	require.NoError(t, json.Unmarshal(mustRaw(t, env, "payments"), &payments))
	assert.Empty(t, payments)

	// A full card payment marks the booking paid.
	w, env = do(t, r, http.MethodPost, "/api/v1/payments", gin.H{
		"booking_id": b.ID, "amount": "6000.00", "method": "card",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "paid", unmarshal[paymentPayload](t, env, "payment").Status)

	w, env = do(t, r, http.MethodGet, pathf("/api/v1/bookings/%d", b.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "paid", unmarshal[bookingPayload](t, env, "booking").Status)
}

func TestDuplicateClientPhone(t *testing.T) {
	r := newTestServer(t)
	seedBase(t, r)

	w, env := do(t, r, http.MethodPost, "/api/v1/clients", gin.H{
		"first_name": "Another", "last_name": "Person",
		"phone": "+7-700-100-20-30", "email": "other@example.com",
		"passport_data": "N00000001",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DUPLICATE_UNIQUE_FIELD", env.Error.Code)
}

func TestEmployeeRosterExport(t *testing.T) {
	r := newTestServer(t)
	_, _, buildingID, _ := seedBase(t, r)

	w, _ := do(t, r, http.MethodPost, "/api/v1/positions", gin.H{"name": "Administrator"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/employees", gin.H{
		"first_name": "Anna", "last_name": "Petrova",
		"phone": "+7-700-000-00-01", "building_id": buildingID,
		"position_ids": []int64{1},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/employees/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "id,name,phone,building,positions")
	assert.Contains(t, w.Body.String(), "Petrova Anna")
}

func TestReviewRatingBounds(t *testing.T) {
	r := newTestServer(t)
	clientID, _, _, _ := seedBase(t, r)

	w, _ := do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"client_id": clientID, "review_text": "Great stay", "rating": 6,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"client_id": clientID, "review_text": "Great stay", "rating": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func pathf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func mustRaw(t *testing.T, env envelope, key string) json.RawMessage {
	t.Helper()
	raw, ok := env.Data[key]
	require.True(t, ok, "response data has no %q key", key)
	return raw
}

// trimZeros normalizes decimal JSON output so assertions do not depend on
// the serialized scale ("4000", "4000.0" and "4000.00" all compare equal).
func trimZeros(s string) string {
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
