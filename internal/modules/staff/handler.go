package staff

import (
	"bytes"
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
	rg.POST("/employees", h.CreateEmployee)
	rg.GET("/employees", h.ListEmployees)
	rg.GET("/employees/export", h.ExportRoster)
	rg.GET("/employees/:id", h.GetEmployee)
	rg.PUT("/employees/:id/positions", h.SetPositions)

	rg.POST("/positions", h.CreatePosition)
	rg.GET("/positions", h.ListPositions)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	e, err := h.service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"employee": e})
}

func (h *Handler) GetEmployee(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	e, err := h.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employee": e})
}

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employees": employees})
}

func (h *Handler) SetPositions(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req SetPositionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	e, err := h.service.SetEmployeePositions(c.Request.Context(), id, req.PositionIDs)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employee": e})
}

func (h *Handler) CreatePosition(c *gin.Context) {
	var req CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	p, err := h.service.CreatePosition(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"position": p})
}

func (h *Handler) ListPositions(c *gin.Context) {
	positions, err := h.service.ListPositions(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"positions": positions})
}

func (h *Handler) ExportRoster(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.ExportRoster(c.Request.Context(), &buf); err != nil {
		handleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="employees.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
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
	case errors.Is(err, repository.ErrDuplicate):
		response.Error(c, http.StatusConflict, "DUPLICATE_UNIQUE_FIELD", "An employee with the same phone already exists")
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
