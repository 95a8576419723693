package main

import (
	"context"
	"log/slog"
	"os"

	"nagarsetu/config"
	"nagarsetu/internal/delivery"
	"nagarsetu/internal/delivery/http"
	"nagarsetu/internal/delivery/http/middleware"
	"nagarsetu/internal/delivery/http/router/handler"
	"nagarsetu/internal/delivery/outbox"
	"nagarsetu/internal/domain/service"
	"nagarsetu/internal/infra/auth"
	"nagarsetu/internal/infra/cache"
	"nagarsetu/internal/infra/geocoding"
	logs "nagarsetu/internal/infra/log"
	"nagarsetu/internal/infra/metrics"
	"nagarsetu/internal/infra/persistence/postgres"
	"nagarsetu/internal/infra/pubsub"
	"nagarsetu/internal/infra/qrcode"
	"nagarsetu/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		pubsub.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewReportRepository,
			postgres.NewOutboxRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			geocoding.NewGeocoder,
			newQRCodeService,
			newRouteMetrics,
			newOutboxMetrics,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newRouteMetrics(m *metrics.Metrics) service.RouteMetrics {
	return m
}

func newOutboxMetrics(m *metrics.Metrics) service.OutboxMetrics {
	return m
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRouteService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewReportHandler,
			handler.NewRouteHandler,
		),
	)
}

// injectDelivery runs the API and, when the outbox is enabled, an in-process dispatcher.
// Replicas share the outbox safely since FetchDue skips locked rows.
func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newInProcessDispatcher,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type noopDelivery struct{}

func (noopDelivery) Serve(context.Context) error { return nil }

func newInProcessDispatcher(params outbox.DispatcherParams) (delivery.Delivery, error) {
	if params.Cfg.Outbox == nil || !params.Cfg.Outbox.Enabled {
		return noopDelivery{}, nil
	}

	return outbox.NewDispatcher(params)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
