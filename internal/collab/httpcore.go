package collab

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// httpCore is the shared transport for collaborator clients: JSON in, JSON
// out, bounded retries on transport and server-side failures, observer
// events on every call.
type httpCore struct {
	cfg      Config
	service  string
	endpoint string
	http     *http.Client
	observer Observer
}

func newHTTPCore(cfg Config, service, endpoint string, observer Observer) httpCore {
	if observer == nil {
		observer = NoopObserver{}
	}
	return httpCore{
		cfg:      cfg,
		service:  service,
		endpoint: endpoint,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		observer: observer,
	}
}

// statusError is a non-retryable 4xx response; the caller maps it to a
// domain-specific error.
type statusError struct {
	Code int
	Body []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", "collaborator", e.Code, string(e.Body))
}

func (c *httpCore) postJSON(ctx context.Context, op, path string, body, out any) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		err := c.doRequest(ctx, path, body, out)
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				Service: c.service, Operation: op,
				LatencyMs: time.Since(start).Milliseconds(), Success: true,
			})
			return nil
		}
		lastErr = err

		var terminal *statusError
		if errors.As(err, &terminal) {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Service: c.service, Operation: op,
		LatencyMs: time.Since(start).Milliseconds(), Success: false,
		ErrorCode: errorCode(lastErr),
	})

	var terminal *statusError
	if errors.As(lastErr, &terminal) {
		return lastErr
	}
	if ctx.Err() != nil {
		return ErrTimeout
	}
	if isConnectionError(lastErr) {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *httpCore) doRequest(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return &statusError{Code: resp.StatusCode, Body: respBody}
	default:
		return fmt.Errorf("%s returned status %d: %s", c.service, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// available probes a health path with a short deadline.
func (c *httpCore) available(ctx context.Context, path string) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case isConnectionError(err):
		return "unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		var terminal *statusError
		if errors.As(err, &terminal) {
			return fmt.Sprintf("status_%d", terminal.Code)
		}
		return "error"
	}
}
