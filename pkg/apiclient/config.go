package apiclient

import "time"

// Config holds backend API client configuration.
type Config struct {
	// BaseURL is the backend REST API base path, including the version
	// prefix.
	BaseURL string `env:"MEDIFLOW_API_BASE_URL" envDefault:"http://localhost:3000/api/v1"`

	// Timeout bounds a single HTTP request, including retries' individual
	// attempts.
	Timeout time.Duration `env:"MEDIFLOW_API_TIMEOUT" envDefault:"30s"`

	// MaxRetries is the number of additional attempts for idempotent GET
	// requests that fail with a network error or a 5xx.
	MaxRetries int `env:"MEDIFLOW_API_MAX_RETRIES" envDefault:"2"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:3000/api/v1",
		Timeout:    30 * time.Second,
		MaxRetries: 2,
	}
}
