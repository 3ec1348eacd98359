package booking

import (
	"errors"
	"net/http"
	"strconv"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/response"
	"hotelops/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id", h.UpdateBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.GET("/rooms/:id/availability", h.GetRoomAvailability)
	rg.GET("/clients/:id/bookings", h.ListClientBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	b, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	b, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) GetRoomAvailability(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	checkin, err := domain.ParseDate(c.Query("checkin"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "checkin must be YYYY-MM-DD")
		return
	}
	checkout, err := domain.ParseDate(c.Query("checkout"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "checkout must be YYYY-MM-DD")
		return
	}

	available, err := h.service.IsRoomAvailable(c.Request.Context(), id, checkin, checkout)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, AvailabilityResponse{
		RoomID:       id,
		CheckinDate:  c.Query("checkin"),
		CheckoutDate: c.Query("checkout"),
		Available:    available,
	})
}

func (h *Handler) ListClientBookings(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	bookings, err := h.service.ListByClient(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking dates")
	case errors.Is(err, ErrInvalidDateRange):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Checkin date must be before checkout date")
	case errors.Is(err, ErrRoomUnavailable):
		response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is not available for the selected dates")
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or room not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
