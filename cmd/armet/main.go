package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/armethq/armet"
	"github.com/armethq/armet/core"
)

func main() {
	configPath := flag.String("config", "armet.toml", "path to the TOML configuration file")
	cacheLevel := flag.String("cache", "small", "header-set cache size (small, medium, large, very-large)")
	flag.Parse()

	var opts []core.Option

	cacheOpt, err := armet.WithRistrettoCache(*cacheLevel)
	if err != nil {
		slog.Error("failed to create header-set cache", "error", err)
		os.Exit(1)
	}
	opts = append(opts, cacheOpt)

	app, srv, err := armet.New(*configPath, opts...)
	if err != nil {
		slog.Error("startup failed", "config", *configPath, "error", err)
		os.Exit(1)
	}

	app.Router().Get("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "armet is serving")
	}))
	app.Router().Get("/healthz", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}))
	app.Router().Get("/metrics", promhttp.Handler())

	srv.Run()
}
