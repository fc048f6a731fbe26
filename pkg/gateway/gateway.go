package gateway

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mediflow/mediflow-go/pkg/guard"
	"github.com/mediflow/mediflow-go/pkg/logger"
)

// ErrInvalidUpstream indicates the upstream URL could not be parsed.
var ErrInvalidUpstream = errors.New("invalid upstream URL")

// Config holds gateway routing configuration.
type Config struct {
	// Upstream is the base URL of the web app the gateway fronts.
	Upstream string `env:"MEDIFLOW_UPSTREAM_URL" envDefault:"http://localhost:3001"`
}

// New builds the edge handler: chi router, request id and recovery
// middleware, the route guard, and a reverse proxy to the upstream. The
// /healthz endpoint bypasses the guard.
func New(cfg Config, policy guard.Policy, log *slog.Logger) (http.Handler, error) {
	upstream, err := url.Parse(cfg.Upstream)
	if err != nil {
		return nil, errors.Join(ErrInvalidUpstream, err)
	}
	if upstream.Scheme == "" || upstream.Host == "" {
		return nil, ErrInvalidUpstream
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	proxy := httputil.NewSingleHostReverseProxy(upstream)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "upstream unavailable", logger.Error(err))
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(guard.Middleware(policy, guard.CookieState(nil)))
		r.Handle("/*", proxy)
	})

	return r, nil
}
