package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCity           = errors.New("invalid city")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidCustomerName   = errors.New("invalid customer name")
	ErrInvalidDescription    = errors.New("invalid description")

	// ErrTrackingCodeExhausted — не удалось сгенерировать уникальный код
	// за отведенные попытки. На практике означает переполнение пространства
	// кодов по направлению.
	ErrTrackingCodeExhausted = errors.New("tracking code space exhausted")
)
