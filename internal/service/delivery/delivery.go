package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"celeris/internal/entities"
	"celeris/internal/repository"
)

// Delivery закрывает жизненный цикл отправления: en_route -> delivered или
// en_route -> incident. Из терминальных статусов переходов нет.
//
// Обе операции идемпотентны по предусловию: повторный вызов после
// транзиентного сбоя либо доведет переход до конца, либо упрется в уже
// достигнутое терминальное состояние.
type Delivery struct {
	repository Repository
	txManager  TxManager
	notifier   Notifier
}

func New(repository Repository, txManager TxManager, notifier Notifier) *Delivery {
	return &Delivery{
		repository: repository,
		txManager:  txManager,
		notifier:   notifier,
	}
}

// ConfirmDelivery сверяет код получателя и закрывает доставку. Несовпавший
// код — отказ без мутации; отсутствующий security_code у отправления
// означает доставку без подтверждения кодом.
func (d *Delivery) ConfirmDelivery(ctx context.Context, shipmentID int64, inputCode string) (*entities.Shipment, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}

	var delivered *entities.Shipment
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := d.getEnRoute(ctx, shipmentID)
		if err != nil {
			return err
		}

		if shipment.SecurityCode != nil && *shipment.SecurityCode != inputCode {
			return ErrInvalidSecurityCode
		}

		delivered, err = d.repository.MarkDelivered(ctx, shipmentID)
		if err != nil {
			if errors.Is(err, repository.ErrNoRowsUpdated) {
				return ErrShipmentNotEnRoute
			}
			return fmt.Errorf("mark delivered: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notifier.ShipmentChanged(ctx, shipmentEvent(delivered))
	return delivered, nil
}

// ReportIncident фиксирует неудачную доставку с обязательной причиной.
// driver_id сохраняется для истории.
func (d *Delivery) ReportIncident(ctx context.Context, shipmentID int64, note string) (*entities.Shipment, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}
	if !isValidIncidentNote(note) {
		return nil, ErrMissingIncidentNote
	}

	var failed *entities.Shipment
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.getEnRoute(ctx, shipmentID); err != nil {
			return err
		}

		var err error
		failed, err = d.repository.MarkIncident(ctx, shipmentID, note)
		if err != nil {
			if errors.Is(err, repository.ErrNoRowsUpdated) {
				return ErrShipmentNotEnRoute
			}
			return fmt.Errorf("mark incident: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notifier.ShipmentChanged(ctx, shipmentEvent(failed))
	return failed, nil
}

func (d *Delivery) getEnRoute(ctx context.Context, shipmentID int64) (*entities.Shipment, error) {
	shipment, err := d.repository.GetShipmentByID(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	if shipment.Status != entities.ShipmentEnRoute {
		return nil, ErrShipmentNotEnRoute
	}
	return shipment, nil
}

func shipmentEvent(s *entities.Shipment) entities.ShipmentEvent {
	return entities.ShipmentEvent{
		ShipmentID:    s.ID,
		TrackingCode:  s.TrackingCode,
		Status:        s.Status,
		DriverID:      s.DriverID,
		CustomerEmail: s.CustomerEmail,
		OccurredAt:    time.Now().UTC(),
	}
}
