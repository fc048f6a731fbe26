// Package logger builds configured log/slog loggers for the MediFlow client
// packages.
//
// Libraries in this module never log through a global logger: they accept a
// *slog.Logger via an option and default to Discard(). The factory here is for
// composition roots (the CLI and the gateway) that want consistent output.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithProduction("mediflow-gateway"),
//	)
//	log.Info("listening", slog.String("addr", addr))
//
// WithDevelopment switches to human-readable text output at debug level;
// WithProduction emits JSON at info level for log aggregation.
package logger
