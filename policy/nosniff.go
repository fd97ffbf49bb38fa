package policy

// NoSniff emits X-Content-Type-Options: nosniff, instructing browsers to
// respect the declared content type instead of sniffing the body.
type NoSniff struct{}

func (NoSniff) Name() string { return "noSniff" }

func (NoSniff) Evaluate(Options) ([]Mutation, error) {
	return []Mutation{Set("X-Content-Type-Options", "nosniff")}, nil
}
