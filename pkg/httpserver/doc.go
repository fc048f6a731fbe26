// Package httpserver wraps http.Server with context-driven graceful shutdown
// for the gateway binary.
//
// # Usage
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		return err
//	}
//
// Run blocks until the context is cancelled or the listener fails, then
// drains in-flight requests within the configured shutdown timeout.
package httpserver
