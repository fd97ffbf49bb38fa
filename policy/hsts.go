package policy

import "fmt"

// HSTS emits the Strict-Transport-Security header.
//
// The force option is not consumed here: the policy always produces its
// mutation, and the engine's upstream override rule decides whether it
// takes effect.
type HSTS struct{}

func (HSTS) Name() string { return "hsts" }

func (HSTS) Evaluate(opts Options) ([]Mutation, error) {
	maxAge, ok, err := intOpt(opts, "hsts", "maxAgeSeconds")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &InvalidOptionError{Policy: "hsts", Option: "maxAgeSeconds", Reason: "is required"}
	}
	if maxAge < 0 {
		return nil, &InvalidOptionError{Policy: "hsts", Option: "maxAgeSeconds", Reason: "must be a non-negative integer"}
	}

	value := fmt.Sprintf("max-age=%d", maxAge)

	includeSub, _, err := boolOpt(opts, "hsts", "includeSubDomains")
	if err != nil {
		return nil, err
	}
	if includeSub {
		value += "; includeSubDomains"
	}

	preload, _, err := boolOpt(opts, "hsts", "preload")
	if err != nil {
		return nil, err
	}
	if preload {
		value += "; preload"
	}

	return []Mutation{Set("Strict-Transport-Security", value)}, nil
}
