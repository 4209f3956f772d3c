//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_test
package rating

import (
	"context"

	"celeris/internal/entities"
)

type Repository interface {
	GetShipmentByID(ctx context.Context, id int64) (*entities.Shipment, error)
	SetRating(ctx context.Context, shipmentID int64, stars int32) (*entities.Shipment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
