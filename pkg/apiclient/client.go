package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mediflow/mediflow-go/pkg/credstore"
	"github.com/mediflow/mediflow-go/pkg/logger"
)

// Client talks to the MediFlow backend REST API.
type Client struct {
	baseURL    string
	public     *http.Client
	authed     *http.Client
	backoff    BackoffStrategy
	maxRetries int
	logger     *slog.Logger
}

// New creates a client for the backend at cfg.BaseURL. Authenticated
// endpoints resolve their bearer token from creds on every request.
func New(cfg Config, creds credstore.Store, opts ...Option) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(DefaultConfig().BaseURL, "/")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}

	c := &Client{
		baseURL:    baseURL,
		public:     &http.Client{Timeout: timeout},
		backoff:    DefaultBackoffStrategy(),
		maxRetries: cfg.MaxRetries,
		logger:     logger.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.authed = newAuthClient(c.public, creds)
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Origin returns the host of the backend base URL. The credential store
// scopes its cookie to this value.
func Origin(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("apiclient: invalid base URL %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("apiclient: base URL %q has no host", baseURL)
	}
	return u.Hostname(), nil
}

// statusMapper converts a non-2xx status into the sentinel joined with the
// decoded backend error. Login and register override the 401 case.
type statusMapper func(status int) error

func defaultSentinel(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 500:
		return ErrUnavailable
	default:
		return nil
	}
}

func authSentinel(status int) error {
	if status == http.StatusBadRequest || status == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}
	return defaultSentinel(status)
}

// do performs one API call. GET requests without a body are retried per the
// backoff strategy on network errors and 5xx responses; everything else gets
// a single attempt.
func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, query url.Values, body, out any, mapStatus statusMapper) error {
	if mapStatus == nil {
		mapStatus = defaultSentinel
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: marshal request: %w", err)
		}
	}

	retries := 0
	if method == http.MethodGet && body == nil {
		retries = c.maxRetries
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, c.backoff.NextInterval(attempt)); err != nil {
				return err
			}
			c.logger.DebugContext(ctx, "retrying request",
				slog.String("method", method),
				slog.String("path", path),
				slog.Int("attempt", attempt),
			)
		}

		retryable, err := c.attempt(ctx, hc, method, path, query, payload, out, mapStatus)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}

	return lastErr
}

// attempt performs a single request. The bool reports whether the failure is
// safe to retry.
func (c *Client) attempt(ctx context.Context, hc *http.Client, method, path string, query url.Values, payload []byte, out any, mapStatus statusMapper) (bool, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return false, fmt.Errorf("apiclient: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		// A missing credential surfaces from the token source; retrying
		// cannot help.
		if errors.Is(err, ErrUnauthorized) {
			return false, err
		}
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return true, errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := decodeAPIError(resp)
		sentinel := mapStatus(resp.StatusCode)
		if sentinel == nil {
			return false, apiErr
		}
		return resp.StatusCode >= 500, errors.Join(sentinel, apiErr)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, errors.Join(ErrInvalidResponse, err)
		}
	}
	return false, nil
}

// decodeAPIError reads the backend error envelope, falling back to the bare
// status when the body is not the expected shape.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var decoded APIError
	if json.Unmarshal(data, &decoded) == nil && decoded.Message != "" {
		decoded.StatusCode = resp.StatusCode
		return &decoded
	}
	return apiErr
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
