package policy

// entry describes one registered policy: the implementation, whether it is
// active when the caller's configuration does not mention it, and its
// default options.
type entry struct {
	policy   Policy
	enabled  bool
	defaults Options
}

// The registry fixes the canonical evaluation order. Composition semantics
// depend on this order: later policies win header conflicts, so it must
// never vary between processes or releases.
//
// noCache and contentSecurityPolicy are opt-in; everything else is active
// by default.
var registry = []entry{
	{HidePoweredBy{}, true, nil},
	{Frameguard{}, true, Options{"action": "sameorigin"}},
	{XSSFilter{}, true, nil},
	{NoSniff{}, true, nil},
	{IENoOpen{}, true, nil},
	{HSTS{}, true, Options{"maxAgeSeconds": int64(15552000)}},
	{DNSPrefetchControl{}, true, Options{"allow": false}},
	{NoCache{}, false, nil},
	{ContentSecurityPolicy{}, false, nil},
}

// Names returns the registered policy names in canonical order.
func Names() []string {
	names := make([]string, len(registry))
	for i, ent := range registry {
		names[i] = ent.policy.Name()
	}
	return names
}

func known(name string) bool {
	for _, ent := range registry {
		if ent.policy.Name() == name {
			return true
		}
	}
	return false
}
