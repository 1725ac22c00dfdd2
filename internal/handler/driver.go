package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/domain"
	"cab/internal/service"
)

// DriverHandler handles driver registry requests.
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// RegisterDriverRequest is the request body for driver registration.
type RegisterDriverRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required"`
	LicenceNo    string  `json:"licence_no" binding:"required"`
	CurrLocation string  `json:"curr_location"`
	Rating       float64 `json:"rating"`
}

// Register handles POST /v1/drivers/register.
func (h *DriverHandler) Register(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	driver, err := h.driverService.InsertDriver(c.Request.Context(), &domain.Driver{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		LicenceNo:    req.LicenceNo,
		CurrLocation: req.CurrLocation,
		Rating:       req.Rating,
		Role:         domain.RoleDriver,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toDriverResponse(driver))
}

// UpdateDriverRequest is the request body for a driver update. The driver is
// matched by email.
type UpdateDriverRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required"`
	LicenceNo    string  `json:"licence_no" binding:"required"`
	CurrLocation string  `json:"curr_location"`
	Rating       float64 `json:"rating"`
}

// Update handles PUT /v1/drivers.
func (h *DriverHandler) Update(c *gin.Context) {
	var req UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	driver, err := h.driverService.UpdateDriver(c.Request.Context(), &domain.Driver{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		LicenceNo:    req.LicenceNo,
		CurrLocation: req.CurrLocation,
		Rating:       req.Rating,
		Role:         domain.RoleDriver,
	}, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(driver))
}

// Delete handles DELETE /v1/drivers/:id.
func (h *DriverHandler) Delete(c *gin.Context) {
	driver, err := h.driverService.DeleteDriver(c.Request.Context(), c.Param("id"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(driver))
}

// GetByID handles GET /v1/drivers/:id.
func (h *DriverHandler) GetByID(c *gin.Context) {
	driver, err := h.driverService.ViewDriver(c.Request.Context(), c.Param("id"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(driver))
}

// GetBest handles GET /v1/drivers/best.
func (h *DriverHandler) GetBest(c *gin.Context) {
	drivers, err := h.driverService.ViewBestDriver(c.Request.Context(), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponses(drivers))
}
