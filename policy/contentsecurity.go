package policy

import (
	"github.com/armethq/armet/policy/csp"
)

// ContentSecurityPolicy compiles a whitelist directive set into the
// Content-Security-Policy header. The options table is the directive set
// itself; see the csp package for normalization and serialization rules.
type ContentSecurityPolicy struct{}

func (ContentSecurityPolicy) Name() string { return "contentSecurityPolicy" }

func (ContentSecurityPolicy) Evaluate(opts Options) ([]Mutation, error) {
	value, err := csp.Compile(opts)
	if err != nil {
		return nil, err
	}
	return []Mutation{Set("Content-Security-Policy", value)}, nil
}
