package optreg

// validate runs the post-scan constraint checks: per-option occurrence
// minimums first (registration order, positionals included), then group
// cardinality (declaration order). The first violation aborts.
func (r *Registry) validate() error {
	for _, o := range r.all {
		if (o.Occurrences == Required || o.Occurrences == OneOrMore) && o.count == 0 {
			// Validation errors are not tied to a token; index is -1.
			e := newParseError(ErrMissingRequiredOption, -1,
				"required option '%s' was not provided", o.PrimaryAlias())
			e.Option = o.PrimaryAlias()
			return e
		}
	}

	for _, g := range r.groups {
		k := 0
		for _, member := range g.members {
			if member.count > 0 {
				k++
			}
		}
		if !g.satisfied(k) {
			e := newParseError(ErrGroupConstraintViolation, -1,
				"group '%s' violated: %s (%d of %d provided)",
				g.Name, g.describeKind(), k, len(g.members))
			e.Group = g.Name
			return e
		}
	}
	return nil
}
