package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/service"
)

// BookingHandler handles the trip booking workflow.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Search handles GET /v1/cabs/search. The pickup location comes from the
// location query parameter.
func (h *BookingHandler) Search(c *gin.Context) {
	cabs, err := h.bookingService.SearchByLocation(c.Request.Context(), c.Query("location"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCabResponses(cabs))
}

// BookTripRequest is the request body for booking a cab.
type BookTripRequest struct {
	CabID          string  `json:"cab_id" binding:"required"`
	PickupLocation string  `json:"pickup_location" binding:"required"`
	FromDateTime   string  `json:"from_datetime" binding:"required"`
	ToDateTime     string  `json:"to_datetime" binding:"required"`
	DistanceKm     float64 `json:"distance_km" binding:"required,gt=0"`
}

// Book handles POST /v1/trips.
func (h *BookingHandler) Book(c *gin.Context) {
	var req BookTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	trip, err := h.bookingService.BookRequest(c.Request.Context(), service.BookTripRequest{
		CabID:          req.CabID,
		PickupLocation: req.PickupLocation,
		FromDateTime:   req.FromDateTime,
		ToDateTime:     req.ToDateTime,
		DistanceKm:     req.DistanceKm,
	}, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toTripResponse(trip))
}

// AssignDriver handles POST /v1/trips/:id/assign.
func (h *BookingHandler) AssignDriver(c *gin.Context) {
	trip, err := h.bookingService.AssignDriver(c.Request.Context(), c.Param("id"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// Complete handles POST /v1/trips/:id/complete.
func (h *BookingHandler) Complete(c *gin.Context) {
	trip, err := h.bookingService.CompleteTrip(c.Request.Context(), c.Param("id"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// Cancel handles POST /v1/trips/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	trip, err := h.bookingService.CancelTrip(c.Request.Context(), c.Param("id"), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}
