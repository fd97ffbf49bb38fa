package core

import (
	"net/http"
	"sort"
	"strings"
)

// SecurityHeaders applies the policy engine to every response. The headers
// already present on the ResponseWriter when the middleware runs are the
// upstream set: host-level defaults decided by outer middleware, which the
// engine's override rule respects unless a policy was resolved with force.
type SecurityHeaders struct {
	app *App
}

// NewSecurityHeaders creates the security header middleware instance.
func NewSecurityHeaders(app *App) *SecurityHeaders {
	return &SecurityHeaders{
		app: app,
	}
}

func (m *SecurityHeaders) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		final, err := m.finalHeaders(w.Header())
		if err != nil {
			// Never apply a partially composed header set: respond
			// with a generic error and stop the chain.
			m.app.Logger().Error("security header composition failed", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		applyHeaderSet(w.Header(), final)
		next.ServeHTTP(w, r)
	})
}

// finalHeaders computes the finalized header set for the given upstream
// headers. The engine is pure, so for a given upstream fingerprint the
// result is constant and can be memoized.
func (m *SecurityHeaders) finalHeaders(upstream http.Header) (http.Header, error) {
	c := m.app.Cache()
	if c == nil {
		return m.app.Engine().Apply(upstream)
	}

	key := fingerprint(upstream)
	if final, ok := c.Get(key); ok {
		return final, nil
	}

	final, err := m.app.Engine().Apply(upstream)
	if err != nil {
		return nil, err
	}
	c.Set(key, final, headerSetCost(final))
	return final, nil
}

// applyHeaderSet makes dst equal to final. Headers present upstream but
// removed by a policy are deleted; value slices are copied so a memoized
// set is never aliased by a live response.
func applyHeaderSet(dst, final http.Header) {
	for name := range dst {
		if _, ok := final[name]; !ok {
			delete(dst, name)
		}
	}
	for name, values := range final {
		dst[name] = append([]string(nil), values...)
	}
}

// fingerprint builds a deterministic cache key from a header set.
func fingerprint(h http.Header) string {
	if len(h) == 0 {
		return ""
	}
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(strings.Join(h[name], ","))
		b.WriteByte('\n')
	}
	return b.String()
}

func headerSetCost(h http.Header) int64 {
	var cost int64
	for name, values := range h {
		cost += int64(len(name))
		for _, v := range values {
			cost += int64(len(v))
		}
	}
	if cost == 0 {
		cost = 1
	}
	return cost
}
