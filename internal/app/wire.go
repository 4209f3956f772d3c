//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"celeris/internal/gateway/kafka/shipmentevents"
	"celeris/internal/handlers/rest/delivery_confirm_post"
	"celeris/internal/handlers/rest/delivery_incident_post"
	"celeris/internal/handlers/rest/dispatch_assign_post"
	"celeris/internal/handlers/rest/dispatch_revert_post"
	"celeris/internal/handlers/rest/driver_activity_put"
	"celeris/internal/handlers/rest/driver_get"
	"celeris/internal/handlers/rest/driver_post"
	"celeris/internal/handlers/rest/driver_put"
	"celeris/internal/handlers/rest/driver_shipments_get"
	"celeris/internal/handlers/rest/drivers_get"
	"celeris/internal/handlers/rest/quote_get"
	"celeris/internal/handlers/rest/shipment_get"
	"celeris/internal/handlers/rest/shipment_link_post"
	"celeris/internal/handlers/rest/shipment_post"
	"celeris/internal/handlers/rest/shipment_rate_post"
	"celeris/internal/handlers/rest/shipments_get"
	"celeris/internal/handlers/tasks/fleet_stats"
	"celeris/internal/pkg/config"
	"celeris/internal/pkg/factory/shipment_code"

	driverRepo "celeris/internal/repository/driver"
	shipmentRepo "celeris/internal/repository/shipment"
	accessService "celeris/internal/service/access"
	deliveryService "celeris/internal/service/delivery"
	dispatchService "celeris/internal/service/dispatch"
	driverService "celeris/internal/service/driver"
	pricingService "celeris/internal/service/pricing"
	ratingService "celeris/internal/service/rating"
	shipmentService "celeris/internal/service/shipment"
	trackingService "celeris/internal/service/tracking"

	"celeris/pkg/background"
	"celeris/pkg/logger"
	"celeris/pkg/querier"
	"celeris/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	FleetStatsInterval time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceDispatch   ServiceDispatch
	ServiceDelivery   ServiceDelivery
	ServiceRating     ServiceRating
	ServiceTracking   ServiceTracking
	ServiceDriver     ServiceDriver
	Pricer            Pricer
	AccessChecker     *accessService.Checker
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_post.Service
}

type ServiceDispatch interface {
	dispatch_assign_post.Service
	dispatch_revert_post.Service
}

type ServiceDelivery interface {
	delivery_confirm_post.Service
	delivery_incident_post.Service
}

type ServiceRating interface {
	shipment_rate_post.Service
}

type ServiceTracking interface {
	shipment_get.Service
	shipments_get.Service
	driver_shipments_get.Service
	shipment_link_post.Service
}

type ServiceDriver interface {
	driver_activity_put.Service
	driver_get.Service
	driver_post.Service
	driver_put.Service
	drivers_get.Service
}

type Pricer interface {
	quote_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideFleetStatsInterval,

		provideShipmentRepository,
		provideDriverRepository,

		pricingService.New,
		shipment_code.New,
		accessService.New,
		provideNotifier,

		provideServiceShipment,
		provideServiceDispatch,
		provideServiceDelivery,
		provideServiceRating,
		provideServiceTracking,
		provideServiceDriver,

		provideFleetStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceRating), new(*ratingService.Rating)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(Pricer), new(*pricingService.Engine)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(dispatchService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(ratingService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(trackingService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),

		wire.Bind(new(shipmentService.Pricer), new(*pricingService.Engine)),
		wire.Bind(new(shipmentService.CodeFactory), new(*shipment_code.CodeFactory)),
		wire.Bind(new(dispatchService.DriverService), new(*driverService.Driver)),

		wire.Bind(new(shipmentService.Notifier), new(*shipmentevents.Gateway)),
		wire.Bind(new(dispatchService.Notifier), new(*shipmentevents.Gateway)),
		wire.Bind(new(deliveryService.Notifier), new(*shipmentevents.Gateway)),

		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(ratingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(fleet_stats.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(fleet_stats.DispatchService), new(*dispatchService.Dispatch)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideNotifier(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *shipmentevents.Gateway {
	return shipmentevents.New(log, producer, cfg.Kafka.Topic)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	pricer shipmentService.Pricer,
	codeFactory shipmentService.CodeFactory,
	notifier shipmentService.Notifier,
) *shipmentService.Shipment {
	return shipmentService.New(repository, pricer, codeFactory, notifier)
}

func provideServiceDispatch(
	repository dispatchService.Repository,
	drivers dispatchService.DriverService,
	txManager dispatchService.TxManager,
	notifier dispatchService.Notifier,
) *dispatchService.Dispatch {
	return dispatchService.New(repository, drivers, txManager, notifier)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	txManager deliveryService.TxManager,
	notifier deliveryService.Notifier,
) *deliveryService.Delivery {
	return deliveryService.New(repository, txManager, notifier)
}

func provideServiceRating(
	repository ratingService.Repository,
	txManager ratingService.TxManager,
) *ratingService.Rating {
	return ratingService.New(repository, txManager)
}

func provideServiceTracking(repository trackingService.Repository) *trackingService.Tracking {
	return trackingService.New(repository)
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideFleetStatsInterval(cfg *config.Config) FleetStatsInterval {
	return FleetStatsInterval(cfg.Tasks.FleetStatsInterval)
}

func provideFleetStatsTask(
	log logger.Logger,
	shipments fleet_stats.ShipmentService,
	dispatch fleet_stats.DispatchService,
	interval FleetStatsInterval,
) *fleet_stats.FleetStats {
	return fleet_stats.NewFleetStats(log, shipments, dispatch, time.Duration(interval))
}

func provideTaskList(fleetStats *fleet_stats.FleetStats) []background.Task {
	return []background.Task{fleetStats}
}

func provideBackgroundWorkers(
	ctx context.Context,
	log logger.Logger,
	tasks []background.Task,
) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
