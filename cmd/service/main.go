package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "celeris/internal/app"
	"celeris/internal/entities"
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
	"celeris/internal/handlers/rest/healthcheck_head"
	"celeris/internal/handlers/rest/ping_get"
	"celeris/internal/handlers/rest/quote_get"
	"celeris/internal/handlers/rest/shipment_get"
	"celeris/internal/handlers/rest/shipment_link_post"
	"celeris/internal/handlers/rest/shipment_post"
	"celeris/internal/handlers/rest/shipment_rate_post"
	"celeris/internal/handlers/rest/shipments_get"
	"celeris/internal/pkg/config"
	"celeris/internal/pkg/dotenv"
	"celeris/internal/pkg/kafka"
	metrics_system "celeris/internal/pkg/metrics"
	access_mw "celeris/internal/pkg/middlewares/access"
	"celeris/internal/pkg/middlewares/graceful_shutdown"
	"celeris/internal/pkg/middlewares/metrics"
	"celeris/internal/pkg/middlewares/rate_limiter"
	"celeris/internal/pkg/middlewares/timeout"
	"celeris/internal/pkg/postgres"
	"celeris/pkg/logger"
	"celeris/pkg/logger/zap_adapter"
	"celeris/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting celeris shipment service")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, strings.Split(cfg.Kafka.Brokers, ","))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// guard навешивает проверку роли на конкретную ручку. Котировка и
	// трекинг по коду остаются публичными: код отправления сам по себе
	// является предъявителем права на просмотр.
	guard := func(capability entities.Capability) func(http.Handler) http.Handler {
		return access_mw.Middleware(log, app.AccessChecker, capability)
	}

	router.Handle("/quote", quote_get.New(log, app.Pricer)).Methods("GET")
	router.Handle("/shipment/{code}", shipment_get.New(log, app.ServiceTracking)).Methods("GET")

	router.Handle("/shipment",
		guard(entities.CapCreateShipment)(shipment_post.New(log, app.ServiceShipment))).Methods("POST")
	router.Handle("/shipments",
		guard(entities.CapTrack)(shipments_get.New(log, app.ServiceTracking))).Methods("GET")
	router.Handle("/shipment/link",
		guard(entities.CapTrack)(shipment_link_post.New(log, app.ServiceTracking))).Methods("POST")
	router.Handle("/shipment/rate",
		guard(entities.CapRate)(shipment_rate_post.New(log, app.ServiceRating))).Methods("POST")

	router.Handle("/dispatch/assign",
		guard(entities.CapDispatch)(dispatch_assign_post.New(log, app.ServiceDispatch))).Methods("POST")
	router.Handle("/dispatch/revert",
		guard(entities.CapDispatch)(dispatch_revert_post.New(log, app.ServiceDispatch))).Methods("POST")

	router.Handle("/delivery/confirm",
		guard(entities.CapConfirmDelivery)(delivery_confirm_post.New(log, app.ServiceDelivery))).Methods("POST")
	router.Handle("/delivery/incident",
		guard(entities.CapConfirmDelivery)(delivery_incident_post.New(log, app.ServiceDelivery))).Methods("POST")

	router.Handle("/driver/{id}/shipments",
		guard(entities.CapTrack)(driver_shipments_get.New(log, app.ServiceTracking))).Methods("GET")
	router.Handle("/driver/{id}/activity",
		guard(entities.CapToggleActivity)(driver_activity_put.New(log, app.ServiceDriver))).Methods("PUT")
	router.Handle("/driver/{id}",
		guard(entities.CapManageDrivers)(driver_get.New(log, app.ServiceDriver))).Methods("GET")
	router.Handle("/drivers",
		guard(entities.CapManageDrivers)(drivers_get.New(log, app.ServiceDriver))).Methods("GET")
	router.Handle("/driver",
		guard(entities.CapManageDrivers)(driver_post.New(log, app.ServiceDriver))).Methods("POST")
	router.Handle("/driver",
		guard(entities.CapManageDrivers)(driver_put.New(log, app.ServiceDriver))).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
