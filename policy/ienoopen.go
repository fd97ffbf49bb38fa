package policy

// IENoOpen emits X-Download-Options: noopen, preventing old Internet
// Explorer versions from opening downloads in the site's security context.
type IENoOpen struct{}

func (IENoOpen) Name() string { return "ieNoOpen" }

func (IENoOpen) Evaluate(Options) ([]Mutation, error) {
	return []Mutation{Set("X-Download-Options", "noopen")}, nil
}
