package core

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/armethq/armet/cache"
	"github.com/armethq/armet/config"
	"github.com/armethq/armet/policy"
	"github.com/armethq/armet/router"
)

// Option configures the App during NewApp.
type Option func(*App)

// WithConfig sets the process configuration.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.cfg = cfg
	}
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithEngine sets the resolved policy engine.
func WithEngine(e *policy.Engine) Option {
	return func(a *App) {
		a.engine = e
	}
}

// WithCache sets the header-set memoization cache.
func WithCache(c cache.Cache[string, http.Header]) Option {
	return func(a *App) {
		a.cache = c
	}
}

// WithRouter sets the router implementation.
func WithRouter(r *router.Router) Option {
	return func(a *App) {
		a.router = r
	}
}

// WithMetricsRegistry sets the prometheus registry the request metrics
// register against. Defaults to prometheus.DefaultRegisterer.
func WithMetricsRegistry(r prometheus.Registerer) Option {
	return func(a *App) {
		a.registry = r
	}
}
