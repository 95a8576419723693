package geocoding

import (
	"log/slog"

	"nagarsetu/config"
	"nagarsetu/internal/domain/service"
	"nagarsetu/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the Geocoder, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Redis   *redis.Client `optional:"true"`
}

// NewGeocoder builds the Nominatim client and puts the Redis cache in front
// of it when both Redis and a cache TTL are configured.
func NewGeocoder(params Params) service.Geocoder {
	cfg := params.Config.Geocoding
	nominatim := NewNominatim(cfg, params.Logger, params.Metrics)

	if params.Redis == nil || cfg == nil || cfg.CacheTTL <= 0 {
		return nominatim
	}

	params.Logger.Info("Geocode cache enabled", slog.Duration("ttl", cfg.CacheTTL))

	return NewCached(nominatim, params.Redis, cfg.CacheTTL, params.Logger, params.Metrics)
}
