package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/domain"
	"cab/internal/service"
)

// CustomerHandler handles customer registry requests.
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// RegisterCustomerRequest is the request body for customer registration.
type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
	Mobile   string `json:"mobile"`
}

// Register handles POST /v1/customers/register.
func (h *CustomerHandler) Register(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	customer, err := h.customerService.InsertCustomer(c.Request.Context(), &domain.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Mobile:   req.Mobile,
		Role:     domain.RoleCustomer,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toCustomerResponse(customer))
}

// UpdateCustomerRequest is the request body for a customer update. The
// customer is matched by email.
type UpdateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
	Mobile   string `json:"mobile"`
}

// Update handles PUT /v1/customers.
func (h *CustomerHandler) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &domain.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Mobile:   req.Mobile,
		Role:     domain.RoleCustomer,
	}, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCustomerResponse(customer))
}

// Delete handles DELETE /v1/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	customer, err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCustomerResponse(customer))
}

// GetAll handles GET /v1/customers.
func (h *CustomerHandler) GetAll(c *gin.Context) {
	customers, err := h.customerService.ViewAllCustomers(c.Request.Context(), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCustomerResponses(customers))
}

// GetByID handles GET /v1/customers/:id.
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customer, err := h.customerService.ViewCustomer(c.Request.Context(), c.Param("id"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCustomerResponse(customer))
}
