package core

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/armethq/armet/config"
	"github.com/armethq/armet/policy"
)

func newTestApp(t *testing.T, policies map[string]any, opts ...Option) *App {
	t.Helper()
	resolved, err := policy.Resolve(policies)
	if err != nil {
		t.Fatalf("failed to resolve policies: %v", err)
	}

	allOpts := []Option{
		WithConfig(config.NewDefaultConfig()),
		WithEngine(policy.NewEngine(resolved)),
	}
	allOpts = append(allOpts, opts...)

	app, err := NewApp(allOpts...)
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}
	return app
}

func TestSecurityHeaders(t *testing.T) {
	app := newTestApp(t, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := NewSecurityHeaders(app).Execute(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	expected := map[string]string{
		"X-Frame-Options":           "SAMEORIGIN",
		"X-Content-Type-Options":    "nosniff",
		"X-XSS-Protection":          "1; mode=block",
		"X-Download-Options":        "noopen",
		"X-DNS-Prefetch-Control":    "off",
		"Strict-Transport-Security": "max-age=15552000",
	}
	for name, want := range expected {
		if got := rr.Header().Get(name); got != want {
			t.Errorf("header %s: got %q, want %q", name, got, want)
		}
	}
}

func TestSecurityHeaders_UpstreamDefaultsRespected(t *testing.T) {
	app := newTestApp(t, nil)

	handler := NewSecurityHeaders(app).Execute(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := httptest.NewRecorder()
	// Host-level defaults decided before policy evaluation.
	rr.Header().Set("Strict-Transport-Security", "max-age=100")
	rr.Header().Set("X-Powered-By", "Express")

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rr.Header().Get("Strict-Transport-Security"); got != "max-age=100" {
		t.Errorf("upstream HSTS not preserved: got %q", got)
	}
	if got := rr.Header().Get("X-Powered-By"); got != "" {
		t.Errorf("X-Powered-By survived removal: %q", got)
	}
}

func TestSecurityHeaders_ForceReplacesUpstream(t *testing.T) {
	app := newTestApp(t, map[string]any{
		"hsts": map[string]any{"maxAgeSeconds": int64(7776000), "force": true},
	})

	handler := NewSecurityHeaders(app).Execute(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := httptest.NewRecorder()
	rr.Header().Set("Strict-Transport-Security", "max-age=100")

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rr.Header().Get("Strict-Transport-Security"); got != "max-age=7776000" {
		t.Errorf("forced HSTS not applied: got %q", got)
	}
}

// failingPolicy bypasses startup validation to exercise the error path.
type failingPolicy struct{}

func (failingPolicy) Name() string { return "failing" }

func (failingPolicy) Evaluate(policy.Options) ([]policy.Mutation, error) {
	return nil, &policy.InvalidOptionError{Policy: "failing", Option: "x", Reason: "is broken"}
}

func TestSecurityHeaders_EvaluationFailureYieldsServerError(t *testing.T) {
	app, err := NewApp(
		WithConfig(config.NewDefaultConfig()),
		WithEngine(policy.NewEngine([]policy.Resolved{
			{Policy: policy.Frameguard{}, Options: policy.Options{"action": "deny"}},
			{Policy: failingPolicy{}},
		})),
	)
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	nextCalled := false
	handler := NewSecurityHeaders(app).Execute(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("got status %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if nextCalled {
		t.Error("next handler ran despite composition failure")
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "" {
		t.Errorf("partial header set applied: X-Frame-Options = %q", got)
	}
}

// mapCache is a trivial synchronous Cache for testing memoization.
type mapCache struct {
	entries map[string]http.Header
	sets    int
}

func (c *mapCache) Get(key string) (http.Header, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *mapCache) Set(key string, value http.Header, cost int64) bool {
	c.entries[key] = value
	c.sets++
	return true
}

func (c *mapCache) SetWithTTL(key string, value http.Header, cost int64, ttl time.Duration) bool {
	return c.Set(key, value, cost)
}

func TestSecurityHeaders_MemoizedHeaderSets(t *testing.T) {
	mc := &mapCache{entries: make(map[string]http.Header)}
	app := newTestApp(t, nil, WithCache(mc))

	handler := NewSecurityHeaders(app).Execute(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if got := rr.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
			t.Fatalf("request %d: got %q, want SAMEORIGIN", i, got)
		}
	}
	if mc.sets != 1 {
		t.Errorf("engine ran %d times, want 1 (memoized)", mc.sets)
	}

	// A different upstream set is a different cache entry.
	rr := httptest.NewRecorder()
	rr.Header().Set("X-Request-Id", "abc-123")
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if mc.sets != 2 {
		t.Errorf("distinct upstream set was not computed separately: sets = %d", mc.sets)
	}
}
