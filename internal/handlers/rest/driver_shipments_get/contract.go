//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_shipments_get_test
package driver_shipments_get

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
	ListByDriver(ctx context.Context, driverID int64, statuses []entities.ShipmentStatusType) ([]entities.Shipment, error)
}
