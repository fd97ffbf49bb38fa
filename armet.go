// Package armet wires the security header policy engine into a ready to
// run HTTP serving stack: TOML configuration, structured logging, request
// metrics and a graceful server around a caller-populated router.
package armet

import (
	"fmt"
	"log/slog"

	"github.com/armethq/armet/config"
	"github.com/armethq/armet/core"
	"github.com/armethq/armet/policy"
	"github.com/armethq/armet/server"
)

// New loads and validates the configuration file, resolves the policy
// engine and assembles the application and server. Routes registered on
// the returned App's router before Run are served behind the metrics and
// security header middleware chain.
func New(configPath string, opts ...core.Option) (*core.App, *server.Server, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	// Load already validated the policy table, so Resolve cannot fail
	// here; the error path stays for callers that bypass Load.
	resolved, err := policy.Resolve(cfg.Policies)
	if err != nil {
		return nil, nil, fmt.Errorf("armet: failed to resolve policies: %w", err)
	}
	engine := policy.NewEngine(resolved)

	// The configured log level drives the default logger; a caller-supplied
	// WithLogger or logger option later in the slice wins.
	allOpts := []core.Option{
		core.WithConfig(cfg),
		core.WithEngine(engine),
		WithPhusLogger(&slog.HandlerOptions{Level: cfg.Log.Level.Level}),
	}
	allOpts = append(allOpts, opts...)

	app, err := core.NewApp(allOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("armet: failed to initialize app: %w", err)
	}

	handler := core.NewChain(app.Router()).
		WithMiddleware(
			core.NewMetrics(core.MetricsOpts{Registry: app.MetricsRegistry()}).Execute,
			core.NewSecurityHeaders(app).Execute,
		).
		Handler()

	srv := server.NewServer(cfg.Server, handler, app.Logger())

	return app, srv, nil
}
