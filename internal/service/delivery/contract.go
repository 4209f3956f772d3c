//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"celeris/internal/entities"
)

type Repository interface {
	GetShipmentByID(ctx context.Context, id int64) (*entities.Shipment, error)
	MarkDelivered(ctx context.Context, shipmentID int64) (*entities.Shipment, error)
	MarkIncident(ctx context.Context, shipmentID int64, note string) (*entities.Shipment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	ShipmentChanged(ctx context.Context, event entities.ShipmentEvent)
}
