package policy

import (
	"net/http"
	"net/textproto"
)

// Engine applies a resolved policy list to per-request header state. The
// policy list is read-only after construction, so one Engine may serve any
// number of concurrent requests without synchronization.
type Engine struct {
	policies []Resolved
}

// NewEngine builds an engine from the output of Resolve.
func NewEngine(policies []Resolved) *Engine {
	return &Engine{policies: policies}
}

// Apply computes the final header set for one response. It starts from a
// copy of upstream (headers already decided by host-level defaults) and
// folds in each policy's mutations in canonical order.
//
// A Set whose header already exists in the original upstream set is skipped
// unless the producing policy was resolved with force; the check is
// per-header and runs against upstream only, so later policies still
// overwrite earlier ones. A Remove always applies.
//
// On any evaluation failure Apply returns a nil header set: the caller must
// never apply a partially composed result.
func (e *Engine) Apply(upstream http.Header) (http.Header, error) {
	final := make(http.Header, len(upstream)+8)
	for name, values := range upstream {
		final[name] = append([]string(nil), values...)
	}

	for _, rp := range e.policies {
		muts, err := rp.Policy.Evaluate(rp.Options)
		if err != nil {
			return nil, &EvaluationError{Policy: rp.Policy.Name(), Err: err}
		}
		for _, m := range muts {
			switch m.Op {
			case OpRemove:
				final.Del(m.Header)
			case OpSet:
				if !rp.Force {
					if _, exists := upstream[textproto.CanonicalMIMEHeaderKey(m.Header)]; exists {
						continue
					}
				}
				final.Set(m.Header, m.Value)
			}
		}
	}
	return final, nil
}
