package policy

import "fmt"

// UnknownPolicyError reports a configuration key that does not name a
// registered policy.
type UnknownPolicyError struct {
	Name string
}

func (e *UnknownPolicyError) Error() string {
	return fmt.Sprintf("policy: unknown policy %q", e.Name)
}

// InvalidOptionError reports a malformed value for a policy option.
type InvalidOptionError struct {
	Policy string
	Option string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("policy %s: option %q %s", e.Policy, e.Option, e.Reason)
}

// EvaluationError wraps a policy failure during composition. The engine
// aborts the whole composition on the first such error; no partial header
// set is ever returned.
type EvaluationError struct {
	Policy string
	Err    error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("policy %s: evaluation failed: %v", e.Policy, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
