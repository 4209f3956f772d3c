//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_rate_post_test
package shipment_rate_post

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
	Rate(ctx context.Context, shipmentID int64, stars int32) (*entities.Shipment, error)
}
