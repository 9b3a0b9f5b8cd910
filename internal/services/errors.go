package services

import "errors"

var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested id
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrValidationFailed wraps every reason a restaurant pizza could not be created
	ErrValidationFailed = errors.New("validation failed")
)
