package apiclient

import (
	"log/slog"
	"net/http"
)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient replaces the base HTTP client. The authenticated transport
// wraps it, so custom transports and timeouts apply to every call.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.public = hc
		}
	}
}

// WithBackoff replaces the retry backoff strategy.
func WithBackoff(strategy BackoffStrategy) Option {
	return func(c *Client) {
		if strategy != nil {
			c.backoff = strategy
		}
	}
}

// WithLogger sets the logger. The client logs retries at debug level and
// nothing else.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log
		}
	}
}
