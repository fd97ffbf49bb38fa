// Package policy implements a composable security header policy engine.
// Each policy is a pure function from an options table to a list of header
// mutations; the engine folds the mutations of all active policies, in a
// fixed canonical order, into the final header set for one response.
package policy

// Options is the effective option table of a single policy, produced by
// merging the registry defaults with the caller-supplied configuration.
// Values come from a decoded configuration format (TOML, JSON), so numeric
// values may arrive as int, int64 or float64.
type Options map[string]any

// Policy is a named, pure computation over an options table. Evaluate must
// be deterministic and free of side effects: the same options yield the
// same mutations on every call, under any concurrency.
type Policy interface {
	Name() string
	Evaluate(opts Options) ([]Mutation, error)
}

// stringOpt reads an optional string option.
func stringOpt(opts Options, policy, key string) (string, bool, error) {
	raw, ok := opts[key]
	if !ok {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, &InvalidOptionError{Policy: policy, Option: key, Reason: "must be a string"}
	}
	return s, true, nil
}

// boolOpt reads an optional boolean option.
func boolOpt(opts Options, policy, key string) (bool, bool, error) {
	raw, ok := opts[key]
	if !ok {
		return false, false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, false, &InvalidOptionError{Policy: policy, Option: key, Reason: "must be a boolean"}
	}
	return b, true, nil
}

// intOpt reads an optional integer option. Integral float64 values are
// accepted because JSON decoding produces them; fractional values are not.
func intOpt(opts Options, policy, key string) (int64, bool, error) {
	raw, ok := opts[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case float64:
		if v != float64(int64(v)) {
			return 0, false, &InvalidOptionError{Policy: policy, Option: key, Reason: "must be an integer"}
		}
		return int64(v), true, nil
	default:
		return 0, false, &InvalidOptionError{Policy: policy, Option: key, Reason: "must be an integer"}
	}
}
