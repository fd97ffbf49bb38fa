package armet

import (
	"log/slog"
	"net/http"
	"os"

	phuslog "github.com/phuslu/log"

	"github.com/armethq/armet/cache/ristretto"
	"github.com/armethq/armet/core"
)

// DefaultLoggerOptions is used by the logger options when nil options are
// passed.
var DefaultLoggerOptions = &slog.HandlerOptions{
	Level: slog.LevelInfo,
}

// WithPhusLogger configures slog with phuslu/log's JSON handler.
// Uses DefaultLoggerOptions if opts is nil.
func WithPhusLogger(opts *slog.HandlerOptions) core.Option {
	if opts == nil {
		opts = DefaultLoggerOptions
	}
	logger := slog.New(phuslog.SlogNewJSONHandler(os.Stderr, opts))
	return core.WithLogger(logger)
}

// WithTextLogger configures slog with the standard library's text handler.
func WithTextLogger(opts *slog.HandlerOptions) core.Option {
	if opts == nil {
		opts = DefaultLoggerOptions
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
	return core.WithLogger(logger)
}

// WithRistrettoCache enables header-set memoization backed by Ristretto.
// The level is a cache size: "small", "medium", "large" or "very-large";
// header sets are tiny, so "small" fits almost every deployment.
func WithRistrettoCache(level string) (core.Option, error) {
	c, err := ristretto.New[http.Header](level)
	if err != nil {
		return nil, err
	}
	return core.WithCache(c), nil
}
