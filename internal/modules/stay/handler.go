package stay

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.POST("/bookings/:id/check-in", h.CheckIn)
	rg.POST("/accommodations/:id/check-out", h.CheckOut)
	rg.GET("/bookings/:id/accommodation", h.GetByBooking)
	rg.GET("/accommodations/active", h.ListActive)
}

func (h *Handler) CheckIn(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	a, err := h.service.CheckIn(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"accommodation": a})
}

func (h *Handler) CheckOut(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	a, err := h.service.CheckOut(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accommodation": a})
}

func (h *Handler) GetByBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	a, err := h.service.GetByBookingID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accommodation": a})
}

func (h *Handler) ListActive(c *gin.Context) {
	stays, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accommodations": stays})
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
	case errors.Is(err, ErrInvalidStateTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATE_TRANSITION", "Operation is not allowed in the current status")
	case errors.Is(err, ErrAlreadyCheckedIn):
		response.Error(c, http.StatusConflict, "ALREADY_CHECKED_IN", "Booking already has an accommodation")
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or accommodation not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
