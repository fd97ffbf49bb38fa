package policy

import "fmt"

// Resolved is one active policy with its effective options. Force is the
// generic override flag lifted out of the options: when set, the policy's
// headers replace values already present upstream instead of yielding to
// them.
type Resolved struct {
	Policy  Policy
	Options Options
	Force   bool
}

// Resolve merges a caller-supplied configuration against the registry and
// returns the active policies in canonical order.
//
// Recognized keys are exactly the registered policy names. The value per
// policy is false (disabled), true (enabled with defaults), or an options
// table deep-merged over the registry defaults with caller values winning
// per key.
//
// Resolve also evaluates every resolved policy once, so that all
// configuration-shape errors surface here, before any request is served.
func Resolve(overrides map[string]any) ([]Resolved, error) {
	for name := range overrides {
		if !known(name) {
			return nil, &UnknownPolicyError{Name: name}
		}
	}

	resolved := make([]Resolved, 0, len(registry))
	for _, ent := range registry {
		name := ent.policy.Name()

		enabled := ent.enabled
		var userOpts Options
		if raw, mentioned := overrides[name]; mentioned {
			switch v := raw.(type) {
			case bool:
				enabled = v
			case map[string]any:
				enabled = true
				userOpts = Options(v)
			case Options:
				enabled = true
				userOpts = v
			default:
				return nil, &InvalidOptionError{Policy: name, Option: name, Reason: "must be a boolean or an options table"}
			}
		}
		if !enabled {
			continue
		}

		opts := mergeOptions(ent.defaults, userOpts)

		force := false
		if raw, ok := opts["force"]; ok {
			b, ok := raw.(bool)
			if !ok {
				return nil, &InvalidOptionError{Policy: name, Option: "force", Reason: "must be a boolean"}
			}
			force = b
			delete(opts, "force")
		}

		r := Resolved{Policy: ent.policy, Options: opts, Force: force}
		if _, err := r.Policy.Evaluate(r.Options); err != nil {
			return nil, fmt.Errorf("policy: invalid configuration for %q: %w", name, err)
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

// mergeOptions deep-merges caller options over defaults. Nested tables are
// merged recursively; lists and scalars are replaced wholesale.
func mergeOptions(defaults, overrides Options) Options {
	merged := make(Options, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		if base, ok := asOptions(merged[k]); ok {
			if over, ok := asOptions(v); ok {
				merged[k] = mergeOptions(base, over)
				continue
			}
		}
		merged[k] = v
	}
	return merged
}

func asOptions(v any) (Options, bool) {
	switch m := v.(type) {
	case Options:
		return m, true
	case map[string]any:
		return Options(m), true
	default:
		return nil, false
	}
}
