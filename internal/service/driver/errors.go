package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidCapacity       = errors.New("capacity must be positive")
	ErrInvalidActivityState  = errors.New("invalid activity state")
	ErrInvalidRating         = errors.New("invalid rating")

	ErrDriverNotFound = errors.New("driver not found")
	ErrConflict       = errors.New("driver already exists")
)
