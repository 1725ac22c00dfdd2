package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/domain"
	"cab/internal/service"
)

// CabHandler handles cab registry requests.
type CabHandler struct {
	cabService *service.CabService
}

// NewCabHandler creates a new CabHandler.
func NewCabHandler(cabService *service.CabService) *CabHandler {
	return &CabHandler{cabService: cabService}
}

// RegisterCabRequest is the request body for cab registration.
type RegisterCabRequest struct {
	CarName      string  `json:"car_name" binding:"required"`
	CarNumber    string  `json:"car_number" binding:"required"`
	CarType      string  `json:"car_type" binding:"required"`
	PerKmRate    float64 `json:"per_km_rate" binding:"required,gt=0"`
	CurrLocation string  `json:"curr_location" binding:"required"`
}

// Register handles POST /v1/cabs/register.
func (h *CabHandler) Register(c *gin.Context) {
	var req RegisterCabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cab, err := h.cabService.InsertCab(c.Request.Context(), &domain.Cab{
		CarName:      req.CarName,
		CarNumber:    req.CarNumber,
		CarType:      req.CarType,
		PerKmRate:    req.PerKmRate,
		CurrLocation: req.CurrLocation,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toCabResponse(cab))
}

// UpdateCabRequest is the request body for a cab update. The cab is matched
// by car number.
type UpdateCabRequest struct {
	CarName      string  `json:"car_name" binding:"required"`
	CarNumber    string  `json:"car_number" binding:"required"`
	CarType      string  `json:"car_type" binding:"required"`
	PerKmRate    float64 `json:"per_km_rate" binding:"required,gt=0"`
	CurrLocation string  `json:"curr_location" binding:"required"`
	Status       string  `json:"status"`
}

// Update handles PUT /v1/cabs.
func (h *CabHandler) Update(c *gin.Context) {
	var req UpdateCabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cab, err := h.cabService.UpdateCab(c.Request.Context(), &domain.Cab{
		CarName:      req.CarName,
		CarNumber:    req.CarNumber,
		CarType:      req.CarType,
		PerKmRate:    req.PerKmRate,
		CurrLocation: req.CurrLocation,
		Status:       domain.CabStatus(req.Status),
	}, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCabResponse(cab))
}

// Delete handles DELETE /v1/cabs/:id.
func (h *CabHandler) Delete(c *gin.Context) {
	cab, err := h.cabService.DeleteCab(c.Request.Context(), c.Param("id"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCabResponse(cab))
}

// GetOfType handles GET /v1/cabs. The car type comes from the car_type query
// parameter.
func (h *CabHandler) GetOfType(c *gin.Context) {
	cabs, err := h.cabService.ViewCabsOfType(c.Request.Context(), c.Query("car_type"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCabResponses(cabs))
}

// CountOfType handles GET /v1/cabs/count.
func (h *CabHandler) CountOfType(c *gin.Context) {
	count, err := h.cabService.CountCabsOfType(c.Request.Context(), c.Query("car_type"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"car_type": c.Query("car_type"), "count": count})
}
