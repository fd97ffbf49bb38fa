package policy

import "strings"

// Frameguard emits X-Frame-Options to control frame embedding. The action
// option selects between denying all embedding and allowing same-origin
// embedding only.
type Frameguard struct{}

func (Frameguard) Name() string { return "frameguard" }

func (Frameguard) Evaluate(opts Options) ([]Mutation, error) {
	action, ok, err := stringOpt(opts, "frameguard", "action")
	if err != nil {
		return nil, err
	}
	if !ok {
		action = "sameorigin"
	}

	switch strings.ToLower(action) {
	case "deny":
		return []Mutation{Set("X-Frame-Options", "DENY")}, nil
	case "sameorigin":
		return []Mutation{Set("X-Frame-Options", "SAMEORIGIN")}, nil
	default:
		return nil, &InvalidOptionError{Policy: "frameguard", Option: "action", Reason: `must be "deny" or "sameorigin"`}
	}
}
