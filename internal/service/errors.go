package service

import "errors"

var (
	// ErrNotLoggedIn is returned when a token does not resolve to a session.
	ErrNotLoggedIn = errors.New("user is not logged in")

	// ErrNotAuthorized is returned when a session exists but lacks the admin role.
	ErrNotAuthorized = errors.New("user is not authorized for this operation")

	// ErrNotRegistered is returned at login when the email is unknown to both
	// the admin and customer registries.
	ErrNotRegistered = errors.New("user is not registered")

	// ErrInvalidCredentials is returned at login on a password mismatch.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAlreadyLoggedIn is returned when the principal already has an active session.
	ErrAlreadyLoggedIn = errors.New("user is already logged in, log out first")

	// ErrAdminAlreadyRegistered is returned on a duplicate admin email.
	ErrAdminAlreadyRegistered = errors.New("admin is already registered")

	// ErrCustomerAlreadyRegistered is returned on a duplicate customer email.
	ErrCustomerAlreadyRegistered = errors.New("customer is already registered")

	// ErrDriverAlreadyRegistered is returned on a duplicate driver licence number.
	ErrDriverAlreadyRegistered = errors.New("driver is already registered")

	// ErrCabAlreadyRegistered is returned on a duplicate car number.
	ErrCabAlreadyRegistered = errors.New("cab is already registered")

	// ErrWrongRole is returned when a registration carries a role tag that does
	// not match the registry it targets.
	ErrWrongRole = errors.New("role does not match the registry")

	// ErrAdminNotFound is returned when the referenced admin does not exist.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrCustomerNotFound is returned when the referenced customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrDriverNotFound is returned when the referenced driver does not exist.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrCabNotFound is returned when the referenced cab does not exist.
	ErrCabNotFound = errors.New("cab not found")

	// ErrTripNotFound is returned when the referenced trip booking does not exist.
	ErrTripNotFound = errors.New("trip booking not found")

	// ErrNoCabAvailable is returned when no cab is available at the pickup location.
	ErrNoCabAvailable = errors.New("no cab available in this location")

	// ErrCabNotAvailable is returned when the chosen cab cannot be booked,
	// either because of its status or its location.
	ErrCabNotAvailable = errors.New("cab is not available for this booking")

	// ErrNoDriverAvailable is returned when no driver is available at the
	// trip's pickup location.
	ErrNoDriverAvailable = errors.New("no driver available in this location")

	// ErrTripNotPending is returned when assigning a driver to a trip that has
	// already left the pending state.
	ErrTripNotPending = errors.New("trip booking is not pending")

	// ErrTripNotConfirmed is returned when completing a trip that is not confirmed.
	ErrTripNotConfirmed = errors.New("trip booking is not confirmed")

	// ErrTripCannotBeCancelled is returned when cancelling a completed or
	// already cancelled trip.
	ErrTripCannotBeCancelled = errors.New("trip booking cannot be cancelled in current state")

	// ErrInvalidDateTime is returned when a textual timestamp does not parse
	// as "dd-MM-yyyy HH:mm".
	ErrInvalidDateTime = errors.New("invalid date-time, expected format dd-MM-yyyy HH:mm")

	// ErrInvalidDateRange is returned when a from timestamp is after its to timestamp.
	ErrInvalidDateRange = errors.New("from date-time is after to date-time")

	// Empty-result sentinels. Several read operations treat an empty result
	// set as an error rather than an empty success; that product policy is
	// enforced here, once per query.

	// ErrNoCustomers is returned when the customer registry is empty.
	ErrNoCustomers = errors.New("no customer present")

	// ErrNoCabsOfType is returned when no cab of the requested type exists.
	ErrNoCabsOfType = errors.New("no cab of this type present")

	// ErrNoBestDriver is returned when the driver registry has no candidates.
	ErrNoBestDriver = errors.New("no best driver present")

	// ErrNoTrips is returned when no trip has been booked at all.
	ErrNoTrips = errors.New("no trip is booked currently")

	// ErrNoTripsOfCabType is returned when no trip used a cab of the given type.
	ErrNoTripsOfCabType = errors.New("no trip found with this car type")

	// ErrNoTripsForCustomer is returned when the customer has no bookings.
	ErrNoTripsForCustomer = errors.New("no trip booked by this customer")

	// ErrNoTripsInWindow is returned when no trip falls inside the date window.
	ErrNoTripsInWindow = errors.New("no trip booked between the given dates")
)
