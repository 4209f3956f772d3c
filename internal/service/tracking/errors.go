package tracking

import "errors"

var (
	ErrInvalidTrackingCode = errors.New("invalid tracking code")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidDriverID     = errors.New("invalid driver id")

	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrAlreadyTracked — код уже есть в локальном списке вызывающего;
	// общее состояние при этом не трогается.
	ErrAlreadyTracked = errors.New("shipment already tracked")
)
