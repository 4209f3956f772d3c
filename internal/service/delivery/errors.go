package delivery

import "errors"

var (
	ErrInvalidShipmentID = errors.New("invalid shipment id")

	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrShipmentNotEnRoute = errors.New("shipment is not en route")

	// ErrInvalidSecurityCode — код получателя не совпал. Бизнес-ошибка,
	// ретраить бессмысленно.
	ErrInvalidSecurityCode = errors.New("invalid security code")

	ErrMissingIncidentNote = errors.New("incident note is required")
)
