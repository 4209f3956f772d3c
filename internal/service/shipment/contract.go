//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"celeris/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
	StatusCounts(ctx context.Context) (map[entities.ShipmentStatusType]int64, error)
}

type Pricer interface {
	Quote(origin, destination string, weightKg float64) (float64, error)
}

// CodeFactory выдает коды для нового отправления. Вынесен в интерфейс,
// чтобы тесты были детерминированными.
type CodeFactory interface {
	NewTrackingCode(destination string) string
	NewSecurityCode() string
}

type Notifier interface {
	ShipmentChanged(ctx context.Context, event entities.ShipmentEvent)
}
