package services

import (
	"errors"
)

var (
	// ErrValidation is returned when a request is missing fields or has the wrong types
	ErrValidation = errors.New("validation errors")
	// ErrRestaurantNotFound is returned when no restaurant has the requested id
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaNotFound is returned when no pizza has the requested id
	ErrPizzaNotFound = errors.New("pizza not found")
	// ErrPizzaOrRestaurantNotFound is returned when a menu entry references a missing parent
	ErrPizzaOrRestaurantNotFound = errors.New("pizza or restaurant not found")
	// ErrClientNotFound is returned when an OAuth client does not exist or belongs to someone else
	ErrClientNotFound = errors.New("client_not_found")
	// ErrUserAlreadyExists is returned when a user with the same email is already stored
	ErrUserAlreadyExists = errors.New("user_already_exists")
)

// PersistenceError wraps a failed write. The transaction it happened in has
// been rolled back when the error is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
