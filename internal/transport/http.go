package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"htask/internal/service"
)

// DefaultTimeout bounds every remote call.
const DefaultTimeout = 10 * time.Second

// HTTP is the Transport implementation over the service's HTTP API.
// It holds no mutable state and is safe for concurrent use.
type HTTP struct {
	base    *url.URL
	client  *http.Client
	log     *zap.Logger
	timeout time.Duration
	tz      *time.Location
}

// Option configures an HTTP transport.
type Option func(*HTTP)

// WithLogger sets the logger used for request debug logging.
func WithLogger(log *zap.Logger) Option {
	return func(h *HTTP) { h.log = log }
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTP) { h.timeout = d }
}

// WithTimezone sets the zone sent with every request. The service uses it to
// decide which calendar day "today" is when grouping tasks by due status.
func WithTimezone(loc *time.Location) Option {
	return func(h *HTTP) { h.tz = loc }
}

// WithHTTPClient replaces the underlying HTTP client, bypassing oauth.
// Intended for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) { h.client = c }
}

// NewHTTP creates a transport for the API at baseURL, authenticating every
// request with tokens from src. A nil source leaves requests unauthenticated;
// tests pair that with WithHTTPClient.
func NewHTTP(baseURL string, src oauth2.TokenSource, opts ...Option) (*HTTP, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	client := http.DefaultClient
	if src != nil {
		client = oauth2.NewClient(context.Background(), src)
	}
	h := &HTTP{
		base:    base,
		client:  client,
		log:     zap.NewNop(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// remoteError is the error body shape returned by the service.
type remoteError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// Do implements Transport. A timeout counts as a transport failure and is
// never retried; retry policy, if any, belongs to the caller's HTTP client.
func (h *HTTP) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	u := *h.base
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.tz != nil {
		req.Header.Set("X-Time-Zone", h.tz.String())
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%w: %v", service.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	h.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", service.ErrRemoteUnavailable, err)
		}
		return nil
	}

	return statusError(resp)
}

// statusError maps a non-2xx response onto the error taxonomy.
func statusError(resp *http.Response) error {
	var remote remoteError
	msg := resp.Status
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&remote); err == nil {
		if remote.Description != "" {
			msg = remote.Description
		} else if remote.Error != "" {
			msg = remote.Error
		}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", service.ErrNotFound, msg)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", service.ErrUnauthorized, msg)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: %s", service.ErrRemoteRejected, msg)
	default:
		return fmt.Errorf("%w: %s", service.ErrRemoteUnavailable, msg)
	}
}
