package rating

import (
	"context"
	"errors"
	"fmt"

	"celeris/internal/entities"
	"celeris/internal/repository"
)

const (
	minStars = 1
	maxStars = 5
)

// Rating принимает оценку клиента за доставленное отправление.
// Запись строго однократная: повторный вызов всегда отказ, никогда
// не перезапись.
type Rating struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Rating {
	return &Rating{
		repository: repository,
		txManager:  txManager,
	}
}

func (r *Rating) Rate(ctx context.Context, shipmentID int64, stars int32) (*entities.Shipment, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}
	if stars < minStars || stars > maxStars {
		return nil, ErrInvalidRating
	}

	var rated *entities.Shipment
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := r.repository.GetShipmentByID(ctx, shipmentID)
		if err != nil {
			if errors.Is(err, repository.ErrShipmentNotFound) {
				return ErrShipmentNotFound
			}
			return fmt.Errorf("get shipment: %w", err)
		}

		if shipment.Status != entities.ShipmentDelivered {
			return ErrShipmentNotDelivered
		}
		if shipment.Rating != nil {
			return ErrAlreadyRated
		}

		// UPDATE с условием rating IS NULL: даже при гонке двух клиентов
		// победит ровно одна запись.
		rated, err = r.repository.SetRating(ctx, shipmentID, stars)
		if err != nil {
			if errors.Is(err, repository.ErrNoRowsUpdated) {
				return ErrAlreadyRated
			}
			return fmt.Errorf("set rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rated, nil
}
