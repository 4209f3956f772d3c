//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_assign_post_test
package dispatch_assign_post

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
	AssignDriver(ctx context.Context, shipmentID, driverID int64) (*entities.Shipment, error)
}
