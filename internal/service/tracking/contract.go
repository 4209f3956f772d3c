//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"celeris/internal/entities"
)

type Repository interface {
	GetShipmentByTrackingCode(ctx context.Context, code string) (*entities.Shipment, error)
	ListShipmentsByCustomerEmail(ctx context.Context, email string) ([]entities.Shipment, error)
	ListShipmentsByDriver(ctx context.Context, driverID int64, statuses []entities.ShipmentStatusType) ([]entities.Shipment, error)
	ListShipments(ctx context.Context) ([]entities.Shipment, error)
}
