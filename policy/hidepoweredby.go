package policy

// HidePoweredBy removes the X-Powered-By header an upstream framework may
// have set. With the setTo option the header is replaced instead, which
// lets the response impersonate another stack.
type HidePoweredBy struct{}

func (HidePoweredBy) Name() string { return "hidePoweredBy" }

func (HidePoweredBy) Evaluate(opts Options) ([]Mutation, error) {
	setTo, ok, err := stringOpt(opts, "hidePoweredBy", "setTo")
	if err != nil {
		return nil, err
	}
	if ok {
		return []Mutation{Set("X-Powered-By", setTo)}, nil
	}
	return []Mutation{Remove("X-Powered-By")}, nil
}
