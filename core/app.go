package core

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/armethq/armet/cache"
	"github.com/armethq/armet/config"
	"github.com/armethq/armet/policy"
	"github.com/armethq/armet/router"
)

// App is the application wide context: configuration, the resolved policy
// engine and the shared heavy objects the middleware needs. Everything in
// it is read-only after NewApp returns, so handlers and middleware may
// share a single App across all requests.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	engine   *policy.Engine
	cache    cache.Cache[string, http.Header]
	router   *router.Router
	registry prometheus.Registerer
}

// NewApp builds the application context from options. Config and engine
// are required; the logger defaults to slog.Default, the router to a fresh
// one, and the header-set cache stays nil (memoization off) unless set.
func NewApp(opts ...Option) (*App, error) {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}

	if a.cfg == nil {
		return nil, fmt.Errorf("core: config is required (use WithConfig)")
	}
	if a.engine == nil {
		return nil, fmt.Errorf("core: policy engine is required (use WithEngine)")
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.router == nil {
		a.router = router.New()
	}
	if a.registry == nil {
		a.registry = prometheus.DefaultRegisterer
	}
	return a, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) Engine() *policy.Engine {
	return a.engine
}

func (a *App) Cache() cache.Cache[string, http.Header] {
	return a.cache
}

func (a *App) Router() *router.Router {
	return a.router
}

func (a *App) MetricsRegistry() prometheus.Registerer {
	return a.registry
}
