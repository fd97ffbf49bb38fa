package policy

// DNSPrefetchControl emits X-DNS-Prefetch-Control. Prefetching is disabled
// unless the allow option is set.
type DNSPrefetchControl struct{}

func (DNSPrefetchControl) Name() string { return "dnsPrefetchControl" }

func (DNSPrefetchControl) Evaluate(opts Options) ([]Mutation, error) {
	allow, _, err := boolOpt(opts, "dnsPrefetchControl", "allow")
	if err != nil {
		return nil, err
	}
	value := "off"
	if allow {
		value = "on"
	}
	return []Mutation{Set("X-DNS-Prefetch-Control", value)}, nil
}
