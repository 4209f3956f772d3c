package pricing

import "errors"

var (
	ErrUnknownCity   = errors.New("unknown city")
	ErrInvalidWeight = errors.New("invalid weight")
)
