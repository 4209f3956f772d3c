//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_revert_post_test
package dispatch_revert_post

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
	RevertDispatch(ctx context.Context, shipmentID int64) (*entities.Shipment, error)
}
