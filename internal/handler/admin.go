package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/domain"
	"cab/internal/service"
)

// AdminHandler handles the admin registry and the admin trip reports.
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// RegisterAdminRequest is the request body for admin registration.
type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
}

// Register handles POST /v1/admin/register.
func (h *AdminHandler) Register(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	admin, err := h.adminService.InsertAdmin(c.Request.Context(), &domain.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toAdminResponse(admin))
}

// UpdateAdminRequest is the request body for an admin update. The admin is
// matched by email.
type UpdateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
}

// Update handles PUT /v1/admin.
func (h *AdminHandler) Update(c *gin.Context) {
	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	admin, err := h.adminService.UpdateAdmin(c.Request.Context(), &domain.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     domain.RoleAdmin,
	}, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toAdminResponse(admin))
}

// Delete handles DELETE /v1/admin/:id.
func (h *AdminHandler) Delete(c *gin.Context) {
	admin, err := h.adminService.DeleteAdmin(c.Request.Context(), c.Param("id"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toAdminResponse(admin))
}

// GetAllTrips handles GET /v1/admin/trips.
func (h *AdminHandler) GetAllTrips(c *gin.Context) {
	trips, err := h.adminService.GetAllTrips(c.Request.Context(), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponses(trips))
}

// GetTripsCabwise handles GET /v1/admin/trips/cabwise.
func (h *AdminHandler) GetTripsCabwise(c *gin.Context) {
	trips, err := h.adminService.GetTripsCabwise(c.Request.Context(), c.Query("car_type"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponses(trips))
}

// GetTripsCustomerwise handles GET /v1/admin/trips/customerwise.
func (h *AdminHandler) GetTripsCustomerwise(c *gin.Context) {
	trips, err := h.adminService.GetTripsCustomerwise(c.Request.Context(), c.Query("customer_id"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponses(trips))
}

// GetTripsForDays handles GET /v1/admin/trips/days. The window bounds come
// from the from and to query parameters.
func (h *AdminHandler) GetTripsForDays(c *gin.Context) {
	trips, err := h.adminService.GetTripsForDays(
		c.Request.Context(),
		c.Query("customer_id"),
		c.Query("from"),
		c.Query("to"),
		sessionToken(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponses(trips))
}
