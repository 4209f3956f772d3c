//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_activity_put_test
package driver_activity_put

import (
	"context"

	"celeris/internal/entities"
	"celeris/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}
