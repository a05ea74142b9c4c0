package domain

import "errors"

// Domain errors
var (
	// ErrNotFound indicates the requested entity does not exist
	ErrNotFound = errors.New("entity not found")

	// ErrCapacityExceeded indicates the event does not have enough remaining places
	ErrCapacityExceeded = errors.New("event capacity exceeded")

	// ErrForbidden indicates the caller is not allowed to perform the operation
	ErrForbidden = errors.New("operation not allowed")

	// ErrInvalidState indicates the subscription status does not permit the operation
	ErrInvalidState = errors.New("invalid subscription state")

	// ErrTicketAlreadyUsed indicates the ticket was already validated at the door
	ErrTicketAlreadyUsed = errors.New("ticket already used")

	// ErrCodeConflict indicates a unique ticket code could not be produced
	ErrCodeConflict = errors.New("ticket code conflict")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login attempt
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation indicates invalid input data
	ErrValidation = errors.New("validation failed")
)
