package access

import "errors"

var (
	ErrUnknownRole      = errors.New("unknown role")
	ErrPermissionDenied = errors.New("permission denied")
)
