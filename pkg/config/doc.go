// Package config loads application configuration from environment variables
// into annotated Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing files are fine), then
// struct fields tagged with `env` are populated from the environment. Each
// configuration type is parsed at most once and cached for the lifetime of the
// process, so independent packages can call Load for the same struct without
// coordinating.
//
// # Usage
//
//	type ClientConfig struct {
//	    BaseURL string        `env:"MEDIFLOW_API_BASE_URL" envDefault:"http://localhost:3000/api/v1"`
//	    Timeout time.Duration `env:"MEDIFLOW_API_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// MustLoad panics on failure and is intended for configuration the process
// cannot start without. Reset clears the cache, which tests use after mutating
// the environment.
package config
