// Command mediflow is the terminal client for the MediFlow clinic backend.
// It keeps a persisted session across invocations: login once, then query
// doctors, book appointments, and manage the profile until logout.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
	"github.com/mediflow/mediflow-go/pkg/config"
	"github.com/mediflow/mediflow-go/pkg/credstore"
	"github.com/mediflow/mediflow-go/pkg/guard"
	"github.com/mediflow/mediflow-go/pkg/locale"
	"github.com/mediflow/mediflow-go/pkg/logger"
	"github.com/mediflow/mediflow-go/pkg/session"
)

type cliConfig struct {
	API       apiclient.Config
	Store     credstore.Config
	LogLevel  slog.Level    `env:"MEDIFLOW_LOG_LEVEL" envDefault:"warn"`
	LogFormat logger.Format `env:"MEDIFLOW_LOG_FORMAT" envDefault:"text"`
}

// app bundles the wired dependencies every subcommand needs.
type app struct {
	cfg     cliConfig
	client  *apiclient.Client
	session *session.Manager
	policy  guard.Policy
	log     *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "mediflow:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	var cfg cliConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithOutput(os.Stderr),
	)

	origin, err := apiclient.Origin(cfg.API.BaseURL)
	if err != nil {
		return err
	}

	creds, err := credstore.New(cfg.Store, origin)
	if err != nil {
		return err
	}

	client := apiclient.New(cfg.API, creds, apiclient.WithLogger(log))
	sm := session.New(client, creds,
		session.WithLocaleStore(locale.NewPrefStore(filepath.Join(stateDir(cfg.Store), "locale"))),
		session.WithLogger(log),
	)

	a := &app{
		cfg:     cfg,
		client:  client,
		session: sm,
		policy:  guard.DefaultPolicy(),
		log:     log,
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "register":
		return a.cmdRegister(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "profile":
		return a.cmdProfile(ctx, rest)
	case "doctors":
		return a.cmdDoctors(ctx, rest)
	case "appointments":
		return a.cmdAppointments(ctx, rest)
	case "book":
		return a.cmdBook(ctx, rest)
	case "locale":
		return a.cmdLocale(ctx, rest)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// requireAuth restores the persisted session and fails when it does not
// resolve to an authenticated user.
func (a *app) requireAuth(ctx context.Context) error {
	if a.session.Initialize(ctx) != session.StatusAuthenticated {
		return fmt.Errorf("not logged in; run: mediflow login")
	}
	return nil
}

// stateDir mirrors the credential store's directory resolution so sibling
// state files live next to credentials.
func stateDir(cfg credstore.Config) string {
	if cfg.Dir != "" {
		return cfg.Dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".mediflow"
	}
	return filepath.Join(base, "mediflow")
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: mediflow <command> [flags]

Commands:
  login         log in with email and password
  register      create a patient account and log in
  logout        log out and clear stored credentials
  whoami        show the current session
  profile       show or update the profile, change password
  doctors       list or manage doctors
  appointments  list, cancel, or update appointments
  book          book an appointment
  locale        show or set the interface language

Environment:
  MEDIFLOW_API_BASE_URL  backend base URL (default http://localhost:3000/api/v1)
  MEDIFLOW_STATE_DIR     credential and preference directory
`)
}
