package fleet_stats

import (
	"context"
	"strconv"
	"time"

	"celeris/internal/entities"
	"celeris/pkg/logger"
)

type ShipmentService interface {
	StatusCounts(ctx context.Context) (map[entities.ShipmentStatusType]int64, error)
}

type DispatchService interface {
	FleetLoads(ctx context.Context) ([]entities.DriverLoad, error)
}

// FleetStats периодически пересчитывает сводку по статусам отправлений и
// загрузке водителей в prometheus-гейджи. Сводка производная, хранить ее
// негде и незачем.
type FleetStats struct {
	log       logger.Logger
	shipments ShipmentService
	dispatch  DispatchService
	interval  time.Duration
}

func NewFleetStats(log logger.Logger, shipments ShipmentService, dispatch DispatchService, interval time.Duration) *FleetStats {
	return &FleetStats{
		log:       log,
		shipments: shipments,
		dispatch:  dispatch,
		interval:  interval,
	}
}

func (f *FleetStats) TTL() time.Duration {
	return f.interval
}

func (f *FleetStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, f.interval)
	defer cancel()

	counts, err := f.shipments.StatusCounts(ctxWithTimeout)
	if err != nil {
		return err
	}

	// выставляем все четыре статуса, иначе исчезнувший статус навсегда
	// застынет на последнем значении
	for _, status := range []entities.ShipmentStatusType{
		entities.ShipmentReceived,
		entities.ShipmentEnRoute,
		entities.ShipmentDelivered,
		entities.ShipmentIncident,
	} {
		ShipmentsByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	loads, err := f.dispatch.FleetLoads(ctxWithTimeout)
	if err != nil {
		return err
	}

	for _, load := range loads {
		driverID := strconv.FormatInt(load.DriverID, 10)
		DriverCommittedKg.WithLabelValues(driverID, load.DriverName).Set(load.CommittedKg)
		DriverCapacityKg.WithLabelValues(driverID, load.DriverName).Set(load.CapacityKg)
		DriverActiveParcels.WithLabelValues(driverID, load.DriverName).Set(float64(load.ActiveParcels))
	}

	f.log.With(
		logger.NewField("drivers", len(loads)),
	).Info("fleet stats refreshed")

	return nil
}

func (f *FleetStats) Info() string {
	return "fleet stats"
}
