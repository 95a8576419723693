package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nagarsetu/config"
	deliverycontext "nagarsetu/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing", incoming: "", keep: false},
		{name: "client id kept", incoming: "  trace-42  ", keep: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(newJSONLogger(&buf))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInContext string
			err := m.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				seenInContext = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside handler")

				return nil
			})(c)
			require.NoError(t, err)

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, id)
			if tt.keep {
				assert.Equal(t, "trace-42", id)
			} else {
				assert.Len(t, id, 36)
			}
			assert.Equal(t, id, seenInContext)
			assert.Equal(t, id, deliverycontext.RequestIDFromEcho(c))

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, id, lines[0]["request_id"])
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewRequestIDMiddleware(newJSONLogger(&buf)).Process)
	e.Use(NewLoggerMiddleware(newJSONLogger(&buf), cfg, "/health", "").Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/reports", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/broken", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") })

	serve := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		return rec
	}

	serve("/health")
	assert.Empty(t, buf.String(), "successful probes are not logged")

	serve("/reports?status=dirty")
	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "HTTP Request", lines[0]["msg"])
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "/reports", lines[0]["uri"])
	assert.Equal(t, "status=dirty", lines[0]["query"])
	assert.EqualValues(t, 200, lines[0]["status"])
	assert.NotEmpty(t, lines[0]["request_id"])

	buf.Reset()
	rec := serve("/broken")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	lines = logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0]["level"])
	assert.EqualValues(t, 502, lines[0]["status"])
	assert.Contains(t, lines[0]["error"], "upstream")
}
