package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/repository"
	"cab/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// sessionToken extracts the session token from the request query.
func sessionToken(c *gin.Context) string {
	return c.Query("token")
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Authorization errors
	case errors.Is(err, service.ErrNotLoggedIn),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotAuthorized):
		return http.StatusForbidden

	// Not-found errors, including the empty-result-as-error views
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrNotRegistered),
		errors.Is(err, service.ErrAdminNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrDriverNotFound),
		errors.Is(err, service.ErrCabNotFound),
		errors.Is(err, service.ErrTripNotFound),
		errors.Is(err, service.ErrNoCabAvailable),
		errors.Is(err, service.ErrNoCustomers),
		errors.Is(err, service.ErrNoCabsOfType),
		errors.Is(err, service.ErrNoBestDriver),
		errors.Is(err, service.ErrNoTrips),
		errors.Is(err, service.ErrNoTripsOfCabType),
		errors.Is(err, service.ErrNoTripsForCustomer),
		errors.Is(err, service.ErrNoTripsInWindow):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrWrongRole),
		errors.Is(err, service.ErrInvalidDateTime),
		errors.Is(err, service.ErrInvalidDateRange):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrAlreadyLoggedIn),
		errors.Is(err, service.ErrAdminAlreadyRegistered),
		errors.Is(err, service.ErrCustomerAlreadyRegistered),
		errors.Is(err, service.ErrDriverAlreadyRegistered),
		errors.Is(err, service.ErrCabAlreadyRegistered),
		errors.Is(err, service.ErrCabNotAvailable),
		errors.Is(err, service.ErrTripNotPending),
		errors.Is(err, service.ErrTripNotConfirmed),
		errors.Is(err, service.ErrTripCannotBeCancelled):
		return http.StatusConflict

	// Service unavailable
	case errors.Is(err, service.ErrNoDriverAvailable):
		return http.StatusServiceUnavailable

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
