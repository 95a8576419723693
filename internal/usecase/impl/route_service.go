package impl

import (
	"context"
	"log/slog"
	"time"

	"nagarsetu/config"
	deliverycontext "nagarsetu/internal/delivery/context"
	"nagarsetu/internal/domain/entity"
	domainerrors "nagarsetu/internal/domain/errors"
	"nagarsetu/internal/domain/repository"
	"nagarsetu/internal/domain/service"
	"nagarsetu/internal/errors"
	"nagarsetu/internal/infra/routing/tour"
	"nagarsetu/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// startPointID names the origin inside a route; report IDs are UUIDs so it cannot collide.
const startPointID = "start"

// defaultMaxReverseLookups bounds reverse geocoding of unlabeled stops per request.
// At Nominatim's 1 req/s the budget must stay well inside the HTTP write timeout.
const defaultMaxReverseLookups = 10

// routeService implements the RouteUsecase interface.
type routeService struct {
	reportRepo repository.ReportRepository
	outboxRepo repository.OutboxRepository
	geocoder   service.Geocoder
	qrService  service.QRCodeService
	metrics    service.RouteMetrics

	options           tour.Options
	maxReverseLookups int
	outboxEnabled     bool
	outboxMaxAttempts int

	logger *slog.Logger
	now    func() time.Time
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	OutboxRepo repository.OutboxRepository
	Geocoder   service.Geocoder
	QRService  service.QRCodeService
	Metrics    service.RouteMetrics `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRouteService creates a new route planning service
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	srv := &routeService{
		reportRepo: params.ReportRepo,
		outboxRepo: params.OutboxRepo,
		geocoder:   params.Geocoder,
		qrService:  params.QRService,
		metrics:    params.Metrics,
		options:    tour.DefaultOptions(),
		logger:     params.Logger,

		maxReverseLookups: defaultMaxReverseLookups,
		now:        time.Now,
	}

	if cfg := params.Config; cfg != nil {
		if cfg.Routing != nil {
			srv.options = routingOptions(cfg.Routing)
			if cfg.Routing.MaxReverseLookups != 0 {
				srv.maxReverseLookups = cfg.Routing.MaxReverseLookups
			}
		}
		if cfg.Outbox != nil {
			srv.outboxEnabled = cfg.Outbox.Enabled
			srv.outboxMaxAttempts = cfg.Outbox.MaxAttempts
		}
	}

	return srv
}

// routingOptions leaves zero values in place; tour substitutes its defaults for them.
func routingOptions(cfg *config.RoutingConfig) tour.Options {
	return tour.Options{
		SpeedKmh:        cfg.DefaultSpeedKmh,
		TwoOptThreshold: cfg.TwoOptThreshold,
		Limits: tour.TwoOptLimits{
			MaxPasses:  cfg.MaxTwoOptPasses,
			TimeBudget: cfg.TwoOptTimeBudget,
		},
	}
}

func (srv *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OptimizeRoute plans a collection route over the requested or actionable reports.
func (srv *routeService) OptimizeRoute(ctx context.Context, input *usecase.OptimizeRouteInput) (*usecase.OptimizeRouteOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrRouteStartMissing
	}

	start, err := srv.resolveStart(ctx, &input.Start)
	if err != nil {
		return nil, err
	}

	reports, err := srv.loadReports(ctx, input.ReportIDs)
	if err != nil {
		return nil, err
	}

	stops := srv.buildStops(ctx, reports)

	startPoint := &entity.RoutePoint{
		ID:        startPointID,
		Latitude:  start.Latitude,
		Longitude: start.Longitude,
		Address:   start.Address,
		IsStart:   true,
	}

	began := srv.now()
	route, err := tour.Optimize(startPoint, stops, srv.options)
	if err != nil {
		return nil, mapTourError(err)
	}
	elapsed := srv.now().Sub(began)

	if srv.metrics != nil {
		srv.metrics.ObserveRoute(route, elapsed)
	}

	logger := srv.log(ctx).With(
		slog.Int("stops", len(stops)),
		slog.Float64("distanceKm", route.TotalDistanceKm),
		slog.Int("passes", route.Passes),
		slog.Duration("elapsed", elapsed),
	)
	if !route.Converged {
		logger.Warn("Route optimization stopped before 2-opt converged")
	} else {
		logger.Debug("Route optimized")
	}

	srv.recordRouteOptimized(ctx, route)

	return &usecase.OptimizeRouteOutput{
		Route:     route,
		Start:     start,
		StopCount: len(stops),
	}, nil
}

// RouteQRCode plans the route and renders its directions link.
func (srv *routeService) RouteQRCode(ctx context.Context, input *usecase.OptimizeRouteInput) ([]byte, error) {
	output, err := srv.OptimizeRoute(ctx, input)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateRouteQR(output.Route)
	if err != nil {
		if errors.Is(err, service.ErrRouteNotNavigable) {
			return nil, domainerrors.ErrRouteInvalidInput.WithDetails(err.Error())
		}

		return nil, errors.Wrap(err, "failed to generate route QR code")
	}

	return png, nil
}

func (srv *routeService) resolveStart(ctx context.Context, start *usecase.StartInput) (*entity.Location, error) {
	hasAddress := start.Address != ""
	hasLat := start.Latitude != nil
	hasLng := start.Longitude != nil

	switch {
	case hasAddress && (hasLat || hasLng):
		return nil, domainerrors.ErrRouteInvalidInput.WithDetails("start takes either an address or coordinates, not both")
	case hasLat != hasLng:
		return nil, domainerrors.ErrRouteInvalidInput.WithDetails("start needs both latitude and longitude")
	case hasAddress:
		location, err := srv.geocoder.Search(ctx, start.Address)
		if err != nil {
			srv.log(ctx).Warn("Failed to geocode start address", slog.String("address", start.Address), slog.Any("error", err))

			return nil, domainerrors.ErrGeocodingFailed.WithDetails("could not locate start address " + start.Address)
		}

		return location, nil
	case hasLat:
		lat, lng := *start.Latitude, *start.Longitude
		if !tour.ValidCoordinate(lat, lng) {
			return nil, domainerrors.ErrRouteInvalidCoordinate.WithDetails("start coordinates are out of range")
		}

		return &entity.Location{
			Latitude:  lat,
			Longitude: lng,
			Address:   srv.reverseLabel(ctx, lat, lng),
		}, nil
	default:
		return nil, domainerrors.ErrRouteStartMissing
	}
}

// loadReports returns the requested reports in request order, or every
// actionable report when ids is empty.
func (srv *routeService) loadReports(ctx context.Context, ids []uuid.UUID) ([]*entity.Report, error) {
	if len(ids) == 0 {
		reports, err := srv.reportRepo.FindReportsByStatus(ctx, entity.ActionableStatuses())
		if err != nil {
			return nil, errors.Wrap(err, "failed to find actionable reports")
		}

		return reports, nil
	}

	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	found, err := srv.reportRepo.FindReportsByIDs(ctx, unique)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reports by IDs")
	}

	byID := make(map[uuid.UUID]*entity.Report, len(found))
	for _, report := range found {
		byID[report.ID] = report
	}

	reports := make([]*entity.Report, 0, len(unique))
	for _, id := range unique {
		report, ok := byID[id]
		if !ok {
			return nil, domainerrors.ErrReportNotFound.WithDetails(id.String())
		}
		if !report.Status.IsActionable() {
			return nil, domainerrors.ErrReportNotActionable.WithDetails(id.String() + " is " + report.Status.String())
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// buildStops labels reports without an address by reverse geocoding, up to
// maxReverseLookups of them; the rest get their coordinates. Negative means no limit.
func (srv *routeService) buildStops(ctx context.Context, reports []*entity.Report) []entity.RoutePoint {
	remaining := srv.maxReverseLookups
	skipped := 0

	stops := make([]entity.RoutePoint, 0, len(reports))
	for _, report := range reports {
		address := report.Address
		if address == "" {
			if remaining != 0 {
				address = srv.reverseLabel(ctx, report.Latitude, report.Longitude)
				remaining--
			} else {
				address = entity.CoordinateLabel(report.Latitude, report.Longitude)
				skipped++
			}
		}

		stops = append(stops, entity.RoutePoint{
			ID:        report.ID.String(),
			Latitude:  report.Latitude,
			Longitude: report.Longitude,
			Address:   address,
			Report:    report,
		})
	}

	if skipped > 0 {
		srv.log(ctx).Info("Reverse geocoding limit reached, labeling stops by coordinates",
			slog.Int("limit", srv.maxReverseLookups),
			slog.Int("skipped", skipped),
		)
	}

	return stops
}

// reverseLabel falls back to the raw coordinates when reverse geocoding fails.
func (srv *routeService) reverseLabel(ctx context.Context, lat, lng float64) string {
	if !tour.ValidCoordinate(lat, lng) {
		return entity.CoordinateLabel(lat, lng)
	}

	location, err := srv.geocoder.Reverse(ctx, lat, lng)
	if err != nil || location.Address == "" {
		if err != nil {
			srv.log(ctx).Debug("Reverse geocoding failed, using coordinates", slog.Any("error", err))
		}

		return entity.CoordinateLabel(lat, lng)
	}

	return location.Address
}

// recordRouteOptimized enqueues the route.optimized event. The route is
// already computed, so failures are only logged.
func (srv *routeService) recordRouteOptimized(ctx context.Context, route *entity.Route) {
	if !srv.outboxEnabled || srv.outboxRepo == nil {
		return
	}

	stops := route.Stops()
	reportIDs := make([]string, 0, len(stops))
	for _, stop := range stops {
		reportIDs = append(reportIDs, stop.ID)
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	now := srv.now()

	event, err := newOutboxEvent(entity.TopicRouteOptimized, requestID, routeOptimizedEvent{
		RequestID:        requestID,
		StopCount:        len(stops),
		ReportIDs:        reportIDs,
		DistanceKm:       route.TotalDistanceKm,
		EstimatedMinutes: route.EstimatedMinutes,
		Converged:        route.Converged,
		OptimizedAt:      now.UTC(),
	}, srv.outboxMaxAttempts, now)
	if err == nil {
		err = srv.outboxRepo.Enqueue(ctx, event)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to enqueue route.optimized event", slog.Any("error", err))
	}
}

// mapTourError converts optimizer input errors into client errors.
func mapTourError(err error) error {
	switch {
	case errors.Is(err, tour.ErrMissingStart):
		return domainerrors.ErrRouteStartMissing
	case errors.Is(err, tour.ErrInvalidCoordinate):
		return domainerrors.ErrRouteInvalidCoordinate.WithDetails(err.Error())
	case errors.Is(err, tour.ErrStartNotFlagged),
		errors.Is(err, tour.ErrStartInStops),
		errors.Is(err, tour.ErrEmptyPointID),
		errors.Is(err, tour.ErrDuplicatePointID):
		return domainerrors.ErrRouteInvalidInput.WithDetails(err.Error())
	default:
		return errors.Wrap(err, "failed to optimize route")
	}
}
