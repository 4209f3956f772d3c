//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_link_post_test
package shipment_link_post

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
	Link(ctx context.Context, code string, knownCodes []string) (*entities.Shipment, error)
}
