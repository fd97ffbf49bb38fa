package policy

// Op is the kind of change a mutation applies to the header set.
type Op uint8

const (
	// OpSet assigns a header to a value, subject to the engine's
	// upstream override rule.
	OpSet Op = iota
	// OpRemove deletes a header. Removal is always applied,
	// regardless of the override rule.
	OpRemove
)

// Mutation is a single header instruction produced by a policy evaluation.
type Mutation struct {
	Op     Op
	Header string
	Value  string
}

// Set builds a set-header mutation.
func Set(header, value string) Mutation {
	return Mutation{Op: OpSet, Header: header, Value: value}
}

// Remove builds a remove-header mutation.
func Remove(header string) Mutation {
	return Mutation{Op: OpRemove, Header: header}
}
