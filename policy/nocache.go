package policy

// NoCache disables response caching everywhere. no-store alone prevents
// all storage; no-cache and must-revalidate cover downstream software that
// misinterprets it, and Pragma covers HTTP/1.0 intermediaries. The noEtag
// option additionally strips a previously computed ETag.
type NoCache struct{}

func (NoCache) Name() string { return "noCache" }

func (NoCache) Evaluate(opts Options) ([]Mutation, error) {
	muts := []Mutation{
		Set("Cache-Control", "no-store, no-cache, must-revalidate"),
		Set("Pragma", "no-cache"),
	}

	noEtag, _, err := boolOpt(opts, "noCache", "noEtag")
	if err != nil {
		return nil, err
	}
	if noEtag {
		muts = append(muts, Remove("ETag"))
	}
	return muts, nil
}
