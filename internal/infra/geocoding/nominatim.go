// Package geocoding resolves addresses through Nominatim (OpenStreetMap),
// with rate limiting, retries and an optional Redis cache in front.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nagarsetu/config"
	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/domain/service"
	"nagarsetu/internal/errors"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "nagarsetu-routing/1.0"

	defaultRequestsPerSecond = 1.0
	defaultTimeout           = 10 * time.Second
	defaultMaxAttempts       = 3
	defaultInitialBackoff    = 500 * time.Millisecond
)

const (
	opSearch  = "search"
	opReverse = "reverse"
)

// Recorder receives one observation per provider call.
type Recorder interface {
	ObserveGeocode(op, outcome string, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveGeocode(string, string, time.Duration) {}

// Nominatim implements service.Geocoder against a Nominatim instance.
type Nominatim struct {
	baseURL        string
	userAgent      string
	email          string
	client         *http.Client
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	logger         *slog.Logger
	recorder       Recorder
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Error       string `json:"error,omitempty"`
}

// NewNominatim fills unset fields of cfg with the public-instance defaults.
// A nil recorder disables metrics.
func NewNominatim(cfg *config.GeocodingConfig, logger *slog.Logger, recorder Recorder) *Nominatim {
	if cfg == nil {
		cfg = &config.GeocodingConfig{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	backoff := cfg.InitialBackoff
	if backoff <= 0 {
		backoff = defaultInitialBackoff
	}

	return &Nominatim{
		baseURL:        baseURL,
		userAgent:      userAgent,
		email:          cfg.Email,
		client:         &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(rate.Limit(rps), burst),
		maxAttempts:    maxAttempts,
		initialBackoff: backoff,
		logger:         logger,
		recorder:       recorder,
	}
}

// Search resolves a free-text address to its best match.
func (n *Nominatim) Search(ctx context.Context, query string) (_ *entity.Location, err error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Wrap(service.ErrNoGeocodingResult, "empty query")
	}
	defer n.observe(opSearch, time.Now(), &err)

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "1")

	var places []place
	if err := n.get(ctx, "/search", params, &places); err != nil {
		return nil, errors.Wrapf(err, "search %q", query)
	}
	if len(places) == 0 {
		return nil, errors.Wrapf(service.ErrNoGeocodingResult, "search %q", query)
	}

	return places[0].location()
}

// Reverse labels a coordinate pair with the nearest address.
func (n *Nominatim) Reverse(ctx context.Context, lat, lng float64) (_ *entity.Location, err error) {
	defer n.observe(opReverse, time.Now(), &err)

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	var result place
	if err := n.get(ctx, "/reverse", params, &result); err != nil {
		return nil, errors.Wrapf(err, "reverse %f,%f", lat, lng)
	}
	if result.Error != "" || result.DisplayName == "" {
		return nil, errors.Wrapf(service.ErrNoGeocodingResult, "reverse %f,%f", lat, lng)
	}

	// Keep the caller's coordinates; Nominatim returns the matched feature's.
	return &entity.Location{
		Latitude:  lat,
		Longitude: lng,
		Address:   result.DisplayName,
	}, nil
}

func (n *Nominatim) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	if n.email != "" {
		params.Set("email", n.email)
	}
	endpoint := n.baseURL + path + "?" + params.Encode()

	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", n.userAgent)
		req.Header.Set("Accept", "application/json")

		return req, nil
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode nominatim response")
	}

	return nil
}

func (n *Nominatim) observe(op string, start time.Time, err *error) {
	outcome := "ok"
	switch {
	case *err == nil:
	case errors.Is(*err, service.ErrNoGeocodingResult):
		outcome = "no_result"
	default:
		outcome = "error"
	}
	n.recorder.ObserveGeocode(op, outcome, time.Since(start))
}

func (p place) location() (*entity.Location, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse latitude %q", p.Lat)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse longitude %q", p.Lon)
	}

	return &entity.Location{
		Latitude:  lat,
		Longitude: lng,
		Address:   p.DisplayName,
	}, nil
}
