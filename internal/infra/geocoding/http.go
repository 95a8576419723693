package geocoding

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"nagarsetu/internal/errors"
)

// StatusError is a non-2xx provider response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nominatim returned %d: %s", e.Code, e.Body)
}

func (e *StatusError) retryable() bool {
	switch e.Code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func (n *Nominatim) do(req *http.Request) (*http.Response, error) {
	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()

		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	return resp, nil
}

// doWithRetry waits on the shared rate limiter before every attempt and
// retries network errors, 429 and 5xx with exponential backoff.
func (n *Nominatim) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	backoff := n.initialBackoff

	var lastErr error
	for attempt := 1; attempt <= n.maxAttempts; attempt++ {
		if err := n.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "rate limiter")
		}

		req, err := makeReq()
		if err != nil {
			return nil, errors.Wrap(err, "make request")
		}

		resp, err := n.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isRetryable(err) || attempt == n.maxAttempts {
			break
		}

		n.logger.Debug("[Geocoding] Retrying request",
			"attempt", attempt,
			"backoff", backoff,
			"error", err.Error(),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil, errors.WithStack(ctx.Err())
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, errors.WithStack(lastErr)
}

func isRetryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.retryable()
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}
