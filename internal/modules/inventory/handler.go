package inventory

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
	rg.PUT("/buildings/:id/products/:product_id/stock", h.SetProductStock)
	rg.PUT("/buildings/:id/services/:service_id/active", h.SetServiceActive)
	rg.GET("/buildings/:id/products/:product_id/stock", h.GetProductStock)
	rg.GET("/buildings/:id/inventory", h.GetBuildingInventory)
}

func (h *Handler) SetProductStock(c *gin.Context) {
	buildingID, ok := paramID(c, "id")
	if !ok {
		return
	}
	productID, ok := paramID(c, "product_id")
	if !ok {
		return
	}
	var req SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	row, err := h.service.SetProductAvailability(c.Request.Context(), buildingID, productID, *req.Available)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stock": row})
}

func (h *Handler) SetServiceActive(c *gin.Context) {
	buildingID, ok := paramID(c, "id")
	if !ok {
		return
	}
	serviceID, ok := paramID(c, "service_id")
	if !ok {
		return
	}
	var req SetServiceActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	row, err := h.service.SetServiceActive(c.Request.Context(), buildingID, serviceID, *req.IsActive)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"building_service": row})
}

func (h *Handler) GetProductStock(c *gin.Context) {
	buildingID, ok := paramID(c, "id")
	if !ok {
		return
	}
	productID, ok := paramID(c, "product_id")
	if !ok {
		return
	}
	row, err := h.service.GetProductStock(c.Request.Context(), buildingID, productID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stock": row})
}

func (h *Handler) GetBuildingInventory(c *gin.Context) {
	buildingID, ok := paramID(c, "id")
	if !ok {
		return
	}
	inv, err := h.service.GetBuildingInventory(c.Request.Context(), buildingID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inventory": inv})
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+name)
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Available must not be negative")
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Building, product or service not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
