package handler

import "cab/internal/domain"

// CabResponse is the HTTP representation of a cab.
type CabResponse struct {
	ID           string  `json:"id"`
	CarName      string  `json:"car_name"`
	CarNumber    string  `json:"car_number"`
	CarType      string  `json:"car_type"`
	PerKmRate    float64 `json:"per_km_rate"`
	CurrLocation string  `json:"curr_location"`
	Status       string  `json:"status"`
}

func toCabResponse(cab *domain.Cab) CabResponse {
	return CabResponse{
		ID:           cab.ID,
		CarName:      cab.CarName,
		CarNumber:    cab.CarNumber,
		CarType:      cab.CarType,
		PerKmRate:    cab.PerKmRate,
		CurrLocation: cab.CurrLocation,
		Status:       string(cab.Status),
	}
}

func toCabResponses(cabs []*domain.Cab) []CabResponse {
	responses := make([]CabResponse, 0, len(cabs))
	for _, cab := range cabs {
		responses = append(responses, toCabResponse(cab))
	}
	return responses
}

// DriverResponse is the HTTP representation of a driver. The password is
// never echoed back.
type DriverResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	LicenceNo    string  `json:"licence_no"`
	CurrLocation string  `json:"curr_location"`
	Status       string  `json:"status"`
	Rating       float64 `json:"rating"`
}

func toDriverResponse(driver *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:           driver.ID,
		Name:         driver.Name,
		Email:        driver.Email,
		LicenceNo:    driver.LicenceNo,
		CurrLocation: driver.CurrLocation,
		Status:       string(driver.Status),
		Rating:       driver.Rating,
	}
}

func toDriverResponses(drivers []*domain.Driver) []DriverResponse {
	responses := make([]DriverResponse, 0, len(drivers))
	for _, driver := range drivers {
		responses = append(responses, toDriverResponse(driver))
	}
	return responses
}

// CustomerResponse is the HTTP representation of a customer.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
}

func toCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      customer.ID,
		Name:    customer.Name,
		Email:   customer.Email,
		Address: customer.Address,
		Mobile:  customer.Mobile,
	}
}

func toCustomerResponses(customers []*domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, toCustomerResponse(customer))
	}
	return responses
}

// AdminResponse is the HTTP representation of an admin.
type AdminResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func toAdminResponse(admin *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:      admin.ID,
		Name:    admin.Name,
		Email:   admin.Email,
		Address: admin.Address,
	}
}

// TripResponse is the HTTP representation of a trip booking.
type TripResponse struct {
	ID             string  `json:"id"`
	CustomerID     string  `json:"customer_id"`
	CabID          string  `json:"cab_id"`
	DriverID       string  `json:"driver_id,omitempty"`
	PickupLocation string  `json:"pickup_location"`
	FromDateTime   string  `json:"from_datetime"`
	ToDateTime     string  `json:"to_datetime"`
	DistanceKm     float64 `json:"distance_km"`
	Bill           float64 `json:"bill"`
	Status         string  `json:"status"`
}

func toTripResponse(trip *domain.TripBooking) TripResponse {
	return TripResponse{
		ID:             trip.ID,
		CustomerID:     trip.CustomerID,
		CabID:          trip.CabID,
		DriverID:       trip.DriverID,
		PickupLocation: trip.PickupLocation,
		FromDateTime:   trip.FromDateTime,
		ToDateTime:     trip.ToDateTime,
		DistanceKm:     trip.DistanceKm,
		Bill:           trip.Bill,
		Status:         string(trip.Status),
	}
}

func toTripResponses(trips []*domain.TripBooking) []TripResponse {
	responses := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		responses = append(responses, toTripResponse(trip))
	}
	return responses
}
