// Command mediflow-gateway fronts the clinic web app with the route guard:
// requests hit the guard at the edge, and only allowed ones reach the
// upstream. The redirect rules are the same ones the client applies locally.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mediflow/mediflow-go/pkg/config"
	"github.com/mediflow/mediflow-go/pkg/gateway"
	"github.com/mediflow/mediflow-go/pkg/guard"
	"github.com/mediflow/mediflow-go/pkg/httpserver"
	"github.com/mediflow/mediflow-go/pkg/logger"
)

type gatewayConfig struct {
	Server    httpserver.Config
	Gateway   gateway.Config
	LogLevel  slog.Level    `env:"MEDIFLOW_LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"MEDIFLOW_LOG_FORMAT" envDefault:"json"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "mediflow-gateway:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg gatewayConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithAttr(slog.String("service", "mediflow-gateway")),
	)

	handler, err := gateway.New(cfg.Gateway, guard.DefaultPolicy(), log)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "starting gateway", "upstream", cfg.Gateway.Upstream)
	return httpserver.New(cfg.Server, httpserver.WithLogger(log)).Run(ctx, handler)
}
