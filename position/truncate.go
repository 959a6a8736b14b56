package position

// Truncate restricts p to the exclusive half-open window [start, end),
// returning ok=false if nothing of p remains inside it.
//
// A Span with exactly one endpoint inside the window has its
// out-of-window endpoint shrunk to the boundary and its fuzzy flag on
// that side cleared -- callers that need to preserve fuzziness across a
// truncation should post-process the result.
func Truncate(p Position, start, end int) (Position, bool) {
	switch p.Kind {
	case KindSingle:
		if p.A >= start && p.A < end {
			return p, true
		}
		return Position{}, false

	case KindBetween:
		if (p.A >= start && p.A < end) || (p.B >= start && p.B < end) {
			return p, true
		}
		return Position{}, false

	case KindSpan:
		aIn := p.A >= start && p.A < end
		bIn := p.B >= start && p.B < end
		switch {
		case aIn && bIn:
			return mustSimplifyShallow(p), true
		case aIn && !bIn:
			return mustSimplifyShallow(Span(p.A, p.BeforeA, end-1, After(false))), true
		case !aIn && bIn:
			return mustSimplifyShallow(Span(start, Before(false), p.B, p.AfterB)), true
		default:
			if p.A <= start && p.B >= end-1 {
				return mustSimplifyShallow(SimpleSpan(start, end-1)), true
			}
			return Position{}, false
		}

	case KindComplement:
		child, ok := Truncate(*p.Child, start, end)
		if !ok {
			return Position{}, false
		}
		return Complement(child), true

	case KindJoin:
		children := truncateFilter(p.Children, start, end)
		if len(children) == 0 {
			return Position{}, false
		}
		res := mustSimplifyShallow(Join(children...))
		return res, true

	case KindOrder:
		children := truncateFilter(p.Children, start, end)
		if len(children) == 0 {
			return Position{}, false
		}
		return Order(children...), true

	case KindBond:
		children := truncateFilter(p.Children, start, end)
		if len(children) == 0 {
			return Position{}, false
		}
		return Bond(children...), true

	case KindOneOf:
		children := truncateFilter(p.Children, start, end)
		if len(children) == 0 {
			return Position{}, false
		}
		return OneOf(children...), true

	default: // External, Gap: pass through unchanged
		return p, true
	}
}

func truncateFilter(ps []Position, start, end int) []Position {
	res := make([]Position, 0, len(ps))
	for _, p := range ps {
		if t, ok := Truncate(p, start, end); ok {
			res = append(res, t)
		}
	}
	return res
}

// mustSimplifyShallow applies simplifyShallow and panics on error. The
// only failure mode of simplifyShallow is Empty on a Join with no
// children, which cannot happen for the single-Position or
// already-filtered-non-empty inputs Truncate passes it.
func mustSimplifyShallow(p Position) Position {
	res, err := simplifyShallow(p)
	if err != nil {
		panic(err)
	}
	return res
}
