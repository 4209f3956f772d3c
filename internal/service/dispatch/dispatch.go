package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"celeris/internal/entities"
	"celeris/internal/repository"
	driverService "celeris/internal/service/driver"
)

// Dispatch назначает и снимает водителей с отправлений, охраняя единственный
// межстрочный инвариант системы: суммарный вес активных доставок водителя
// никогда не превышает его грузоподъемность.
type Dispatch struct {
	repository    Repository
	driverService DriverService
	txManager     TxManager
	notifier      Notifier
}

func New(
	repository Repository,
	driverService DriverService,
	txManager TxManager,
	notifier Notifier,
) *Dispatch {
	return &Dispatch{
		repository:    repository,
		driverService: driverService,
		txManager:     txManager,
		notifier:      notifier,
	}
}

// CurrentLoad возвращает производную занятость водителя. Считается заново
// от персистентной истины при каждом вызове — отдельного счетчика, который
// мог бы разойтись, не существует.
func (d *Dispatch) CurrentLoad(ctx context.Context, driverID int64) (float64, error) {
	if driverID <= 0 {
		return 0, ErrInvalidDriverID
	}

	load, err := d.repository.CommittedLoadByDriver(ctx, driverID)
	if err != nil {
		return 0, fmt.Errorf("committed load: %w", err)
	}
	return load, nil
}

// AssignDriver переводит received -> en_route с проверкой грузоподъемности.
// Чтение нагрузки, проверка и запись выполняются в одной SERIALIZABLE
// транзакции: две конкурентные диспетчеризации на одного водителя не могут
// вдвоем переполнить его лимит.
func (d *Dispatch) AssignDriver(ctx context.Context, shipmentID, driverID int64) (*entities.Shipment, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	var assigned *entities.Shipment
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := d.repository.GetShipmentByID(ctx, shipmentID)
		if err != nil {
			if errors.Is(err, repository.ErrShipmentNotFound) {
				return ErrShipmentNotFound
			}
			return fmt.Errorf("get shipment: %w", err)
		}

		if shipment.Status != entities.ShipmentReceived {
			return ErrShipmentNotPending
		}

		driver, err := d.driverService.GetDriver(ctx, driverID)
		if err != nil {
			if errors.Is(err, driverService.ErrDriverNotFound) {
				return ErrDriverNotFound
			}
			return fmt.Errorf("get driver: %w", err)
		}

		committed, err := d.repository.CommittedLoadByDriver(ctx, driverID)
		if err != nil {
			return fmt.Errorf("committed load: %w", err)
		}

		projected := committed + shipment.WeightKg
		if projected > driver.CapacityKg {
			return &OverCapacityError{
				DriverID:    driver.ID,
				ProjectedKg: projected,
				CapacityKg:  driver.CapacityKg,
			}
		}

		assigned, err = d.repository.MarkEnRoute(ctx, shipmentID, driverID)
		if err != nil {
			// строка ушла из received между чтением и записью
			if errors.Is(err, repository.ErrNoRowsUpdated) {
				return ErrShipmentNotPending
			}
			return fmt.Errorf("mark en route: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notifier.ShipmentChanged(ctx, shipmentEvent(assigned))
	return assigned, nil
}

// RevertDispatch возвращает en_route -> received и отвязывает водителя.
// Его производная нагрузка уменьшается автоматически: она нигде не хранится.
func (d *Dispatch) RevertDispatch(ctx context.Context, shipmentID int64) (*entities.Shipment, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}

	var reverted *entities.Shipment
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		reverted, err = d.repository.RevertToReceived(ctx, shipmentID)
		if err != nil {
			if errors.Is(err, repository.ErrNoRowsUpdated) {
				return d.classifyRevertFailure(ctx, shipmentID)
			}
			return fmt.Errorf("revert dispatch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notifier.ShipmentChanged(ctx, shipmentEvent(reverted))
	return reverted, nil
}

// FleetLoads отдает занятость всех водителей разом — для отчетов менеджера
// и фоновых метрик.
func (d *Dispatch) FleetLoads(ctx context.Context) ([]entities.DriverLoad, error) {
	loads, err := d.repository.FleetLoads(ctx)
	if err != nil {
		return nil, fmt.Errorf("fleet loads: %w", err)
	}
	return loads, nil
}

func (d *Dispatch) classifyRevertFailure(ctx context.Context, shipmentID int64) error {
	_, err := d.repository.GetShipmentByID(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return ErrShipmentNotFound
		}
		return fmt.Errorf("classify revert failure: %w", err)
	}
	return ErrShipmentNotEnRoute
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
