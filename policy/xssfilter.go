package policy

// XSSFilter emits the legacy X-XSS-Protection header for browsers that
// still honor it.
type XSSFilter struct{}

func (XSSFilter) Name() string { return "xssFilter" }

func (XSSFilter) Evaluate(Options) ([]Mutation, error) {
	return []Mutation{Set("X-XSS-Protection", "1; mode=block")}, nil
}
