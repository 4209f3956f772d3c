package rating

import "errors"

var (
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidRating     = errors.New("rating must be an integer from 1 to 5")

	ErrShipmentNotFound     = errors.New("shipment not found")
	ErrShipmentNotDelivered = errors.New("shipment is not delivered")
	ErrAlreadyRated         = errors.New("shipment already rated")
)
