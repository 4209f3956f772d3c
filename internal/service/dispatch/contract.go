//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"celeris/internal/entities"
)

type Repository interface {
	GetShipmentByID(ctx context.Context, id int64) (*entities.Shipment, error)
	CommittedLoadByDriver(ctx context.Context, driverID int64) (float64, error)
	MarkEnRoute(ctx context.Context, shipmentID, driverID int64) (*entities.Shipment, error)
	RevertToReceived(ctx context.Context, shipmentID int64) (*entities.Shipment, error)
	FleetLoads(ctx context.Context) ([]entities.DriverLoad, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	ShipmentChanged(ctx context.Context, event entities.ShipmentEvent)
}
