package middleware

import (
	"log/slog"
	"time"

	"nagarsetu/config"
	deliverycontext "nagarsetu/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request through the
// request-scoped logger.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware. Requests to skipPaths
// are only logged when they fail.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, skipPaths ...string) *LoggerMiddleware {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		if p == "" {
			continue
		}
		skip[p] = struct{}{}
	}

	return &LoggerMiddleware{
		logger:    logger,
		debug:     cfg != nil && cfg.Env.Debug,
		skipPaths: skip,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not written the response yet.
			c.Error(err)
			status = c.Response().Status
		}

		if _, skip := m.skipPaths[c.Path()]; skip && status < 400 {
			return nil
		}

		m.logRequest(c, start, status, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if m.debug {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))
		if req.URL.RawQuery != "" {
			fields = append(fields, slog.String("query", req.URL.RawQuery))
		}
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	if status >= 400 {
		level = slog.LevelWarn
	}
	if status >= 500 {
		level = slog.LevelError
	}

	logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
