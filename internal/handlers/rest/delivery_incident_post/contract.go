//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_incident_post_test
package delivery_incident_post

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
	ReportIncident(ctx context.Context, shipmentID int64, note string) (*entities.Shipment, error)
}
