package order

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
	rg.POST("/accommodations/:id/product-orders", h.OrderProduct)
	rg.POST("/accommodations/:id/service-orders", h.OrderService)
	rg.GET("/accommodations/:id/product-orders", h.ListProductOrders)
	rg.GET("/accommodations/:id/service-orders", h.ListServiceOrders)
}

func (h *Handler) OrderProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req OrderProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	o, err := h.service.OrderProduct(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"product_order": o})
}

func (h *Handler) OrderService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req OrderServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	o, err := h.service.OrderService(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service_order": o})
}

func (h *Handler) ListProductOrders(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	orders, err := h.service.ListProductOrders(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product_orders": orders})
}

func (h *Handler) ListServiceOrders(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	orders, err := h.service.ListServiceOrders(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service_orders": orders})
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
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quantity must be at least 1")
	case errors.Is(err, ErrInsufficientStock):
		response.Error(c, http.StatusConflict, "INSUFFICIENT_STOCK", "Not enough stock in the building")
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation, product or service not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
