package access

import (
	"celeris/internal/entities"
	"celeris/pkg/logger"
)

type Checker interface {
	Check(role entities.Role, capability entities.Capability) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
