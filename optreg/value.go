package optreg

// SlotKind selects how a ValueCell stores successive parse results.
type SlotKind int

const (
	// Scalar overwrites the stored value on every successful parse.
	Scalar SlotKind = iota
	// Sequence appends every successful parse, preserving arrival order.
	// Duplicates are kept.
	Sequence
)

// ValueCell is the typed storage slot behind one option. A Scalar cell
// holds the most recent value; a Sequence cell holds all values in the
// order they were parsed.
type ValueCell struct {
	kind   SlotKind
	scalar any
	seq    []any
	set    bool
}

// Kind reports whether the cell overwrites or appends.
func (c *ValueCell) Kind() SlotKind {
	return c.kind
}

// IsSet reports whether any parse has stored a value. A registration-time
// default does not count as set.
func (c *ValueCell) IsSet() bool {
	return c.set
}

// Value returns the scalar value, or the default when nothing was parsed.
// For Sequence cells it returns the last appended value.
func (c *ValueCell) Value() any {
	if c.kind == Sequence {
		if n := len(c.seq); n > 0 {
			return c.seq[n-1]
		}
		return c.scalar
	}
	return c.scalar
}

// Values returns all stored values for Sequence cells. For Scalar cells it
// returns a single-element slice when a value is present.
func (c *ValueCell) Values() []any {
	if c.kind == Sequence {
		return c.seq
	}
	if c.set {
		return []any{c.scalar}
	}
	return nil
}

// store records one successfully parsed value.
func (c *ValueCell) store(v any) {
	if c.kind == Sequence {
		c.seq = append(c.seq, v)
	} else {
		c.scalar = v
	}
	c.set = true
}

// seed installs a registration-time default without marking the cell set.
func (c *ValueCell) seed(v any) {
	c.scalar = v
}

// reset clears parsed state so the registry can be reused. The seeded
// default survives.
func (c *ValueCell) reset() {
	c.seq = nil
	c.set = false
	if c.kind == Scalar {
		// Parsed scalars are discarded; the default (if any) was seeded
		// separately and is restored by the registry.
		c.scalar = nil
	}
}

// Get returns the option's scalar value converted to T. The second result
// is false when nothing was parsed or seeded, or the value is not a T.
func Get[T any](o *Option) (T, bool) {
	v, ok := o.cell.Value().(T)
	return v, ok
}

// GetAll returns every stored value of a Sequence option converted to T.
// Values of a different dynamic type are skipped.
func GetAll[T any](o *Option) []T {
	raw := o.cell.Values()
	if len(raw) == 0 {
		return nil
	}
	out := make([]T, 0, len(raw))
	for _, v := range raw {
		if t, ok := v.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
