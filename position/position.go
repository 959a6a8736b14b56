/*
Package position implements the GenBank feature location grammar as a
recursive sum type, together with the coordinate-free operations that every
higher-level component (the genbank package's sequence model, extractor,
and origin rotation) builds on: bounds discovery, generic tree rewriting,
and formatting back to GenBank text.

Coordinates stored in a Position are always 0-based and inclusive. The
GenBank textual form is 1-based; all of that conversion is concentrated in
ToGBFormat (see also http://www.insdc.org/files/feature_table.html for the
grammar this package implements).

Positions that are well formed always have a <= b in a Span, unless the
host sequence is circular and the span expresses an origin-wrap -- such
trees must be normalized into a Join before leaving the genbank package's
coordinate engine. This package itself does not know about circularity; it
only manipulates the tree shape.
*/
package position

import (
	"fmt"
)

// Before marks a Span's left endpoint as fuzzy ("<a..").
type Before bool

// After marks a Span's right endpoint as fuzzy ("..>b").
type After bool

// Position is a GenBank location expression. The zero value is not a valid
// Position; always construct one of the variants below, or use Single,
// SimpleSpan and friends.
//
// Only some of the fields are meaningful for a given Kind; the comment on
// each field says which.
type Position struct {
	Kind Kind

	// Single, and the endpoints of Between/Span.
	A, B int

	BeforeA Before
	AfterB  After

	// Complement's child, or External's optional child.
	Child *Position

	// Join/Order/Bond/OneOf's children.
	Children []Position

	// External's cross-entry accession.
	Name string

	// Gap's declared length; HasLength distinguishes gap() from gap(n).
	GapLength int
	HasLength bool
}

// Kind discriminates the Position sum type.
type Kind int

// The ten Position constructors.
const (
	KindSingle Kind = iota
	KindBetween
	KindSpan
	KindComplement
	KindJoin
	KindOrder
	KindBond
	KindOneOf
	KindExternal
	KindGap
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "Single"
	case KindBetween:
		return "Between"
	case KindSpan:
		return "Span"
	case KindComplement:
		return "Complement"
	case KindJoin:
		return "Join"
	case KindOrder:
		return "Order"
	case KindBond:
		return "Bond"
	case KindOneOf:
		return "OneOf"
	case KindExternal:
		return "External"
	case KindGap:
		return "Gap"
	default:
		return "Unknown"
	}
}

// ErrorKind names one of the failure modes a Position operation can
// produce.
type ErrorKind int

const (
	// Ambiguous is returned by FindBounds on External or Gap, which have
	// no numeric extent in the host coordinate space.
	Ambiguous ErrorKind = iota
	// External is reserved for attempts to resolve an external reference.
	External
	// Recursion is reserved for a recursion-depth guard.
	Recursion
	// Empty means a Join/Order/Bond/OneOf had no children left after
	// filtering.
	Empty
	// OutOfBounds means a Position refers outside [0, len) of its host
	// sequence, or a reversed span was found on a linear sequence.
	OutOfBounds
)

func (k ErrorKind) String() string {
	switch k {
	case Ambiguous:
		return "ambiguous"
	case External:
		return "external"
	case Recursion:
		return "recursion"
	case Empty:
		return "empty"
	case OutOfBounds:
		return "out of bounds"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every fallible Position operation.
// It carries the offending Position (when there is one) so callers can
// report it back in GenBank form.
type Error struct {
	Kind ErrorKind
	Pos  *Position
}

func (e *Error) Error() string {
	if e.Pos == nil {
		if e.Kind == Empty {
			return "empty position list encountered"
		}
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Pos.ToGBFormat())
}

func newError(kind ErrorKind, pos *Position) error {
	return &Error{Kind: kind, Pos: pos}
}

// Single returns a Position referring to a single nucleotide.
func Single(v int) Position {
	return Position{Kind: KindSingle, A: v}
}

// Between returns the inter-nucleotide site a^b.
func Between(a, b int) Position {
	return Position{Kind: KindBetween, A: a, B: b}
}

// Span returns the inclusive range [a, b], with fuzzy endpoint markers.
func Span(a int, before Before, b int, after After) Position {
	return Position{Kind: KindSpan, A: a, BeforeA: before, B: b, AfterB: after}
}

// SimpleSpan is the commonly used non-fuzzy Span(a, false, b, false).
func SimpleSpan(a, b int) Position {
	return Span(a, false, b, false)
}

// Complement wraps a Position to denote the reverse strand.
func Complement(child Position) Position {
	return Position{Kind: KindComplement, Child: &child}
}

// Join returns an ordered concatenation of children. Document order is
// load-bearing: FindBounds on a Join uses the first and last child, not
// the min/max, because that order encodes an origin-crossing join.
func Join(children ...Position) Position {
	return Position{Kind: KindJoin, Children: children}
}

// Order returns an ordered grouping of children, with no implied adjacency.
func Order(children ...Position) Position {
	return Position{Kind: KindOrder, Children: children}
}

// Bond returns an inter-residue bond grouping of children.
func Bond(children ...Position) Position {
	return Position{Kind: KindBond, Children: children}
}

// OneOf returns a set of mutually exclusive alternative positions.
func OneOf(children ...Position) Position {
	return Position{Kind: KindOneOf, Children: children}
}

// ExternalRef returns an opaque cross-entry reference, optionally
// qualified by a child position in the referenced entry's coordinate
// space. The host coordinate engine never resolves these.
func ExternalRef(name string, child *Position) Position {
	return Position{Kind: KindExternal, Name: name, Child: child}
}

// Gap returns an assembly gap of the given length, or of unknown length
// when hasLength is false.
func Gap(length int, hasLength bool) Position {
	return Position{Kind: KindGap, GapLength: length, HasLength: hasLength}
}

// FindBounds returns the outermost inclusive extent (lo, hi) of p.
//
// Join's bounds are positional -- the first child's low bound and the
// last child's high bound, in document order -- not the min/max over all
// children. This is what lets a Join express an origin-crossing range: a
// min/max implementation would silently "fix" the crossing away. Order,
// Bond and OneOf have no document-order semantics, so they do use
// min/max, skipping any child whose own bounds fail to resolve.
func (p Position) FindBounds() (int, int, error) {
	switch p.Kind {
	case KindSpan:
		return p.A, p.B, nil
	case KindSingle:
		return p.A, p.A, nil
	case KindBetween:
		return p.A, p.B, nil
	case KindComplement:
		return p.Child.FindBounds()
	case KindJoin:
		if len(p.Children) == 0 {
			return 0, 0, newError(Empty, nil)
		}
		lo, _, err := p.Children[0].FindBounds()
		if err != nil {
			return 0, 0, err
		}
		_, hi, err := p.Children[len(p.Children)-1].FindBounds()
		if err != nil {
			return 0, 0, err
		}
		return lo, hi, nil
	case KindOrder, KindBond, KindOneOf:
		haveAny := false
		var lo, hi int
		for i := range p.Children {
			a, b, err := p.Children[i].FindBounds()
			if err != nil {
				// A child that can't report bounds (External, Gap) is
				// skipped rather than failing the whole group.
				continue
			}
			if !haveAny || a < lo {
				lo = a
			}
			if !haveAny || b > hi {
				hi = b
			}
			haveAny = true
		}
		if !haveAny {
			return 0, 0, newError(Empty, nil)
		}
		return lo, hi, nil
	default: // External, Gap
		pp := p
		return 0, 0, newError(Ambiguous, &pp)
	}
}

// PosFn rewrites a node before its children are visited. ValFn rewrites a
// single coordinate leaf (the endpoints of Single, Between, and Span).
type PosFn func(Position) (Position, error)
type ValFn func(int) (int, error)

// Transform performs a depth-first rewrite of p: posFn runs on every node
// before descent, valFn runs on every leaf coordinate. External and Gap
// nodes are never touched by valFn since they carry no coordinates in the
// host space. The first error from either callback aborts the traversal.
//
// This is the single primitive every coordinate-engine operation
// (relocation, wrapping, reverse-complementation, simplification) is built
// from.
func Transform(p Position, posFn PosFn, valFn ValFn) (Position, error) {
	p, err := posFn(p)
	if err != nil {
		return Position{}, err
	}
	return transformChildren(p, posFn, valFn)
}

func transformChildren(p Position, posFn PosFn, valFn ValFn) (Position, error) {
	switch p.Kind {
	case KindComplement:
		child, err := posFn(*p.Child)
		if err != nil {
			return Position{}, err
		}
		child, err = transformChildren(child, posFn, valFn)
		if err != nil {
			return Position{}, err
		}
		p.Child = &child
		return p, nil
	case KindJoin, KindOrder, KindBond, KindOneOf:
		children := make([]Position, len(p.Children))
		for i, c := range p.Children {
			c, err := posFn(c)
			if err != nil {
				return Position{}, err
			}
			c, err = transformChildren(c, posFn, valFn)
			if err != nil {
				return Position{}, err
			}
			children[i] = c
		}
		p.Children = children
		return p, nil
	case KindSingle:
		v, err := valFn(p.A)
		if err != nil {
			return Position{}, err
		}
		p.A = v
		return p, nil
	case KindBetween:
		a, err := valFn(p.A)
		if err != nil {
			return Position{}, err
		}
		b, err := valFn(p.B)
		if err != nil {
			return Position{}, err
		}
		p.A, p.B = a, b
		return p, nil
	case KindSpan:
		a, err := valFn(p.A)
		if err != nil {
			return Position{}, err
		}
		b, err := valFn(p.B)
		if err != nil {
			return Position{}, err
		}
		p.A, p.B = a, b
		return p, nil
	default: // External, Gap: left untouched
		return p, nil
	}
}

// ToGBFormat renders p in canonical GenBank text, converting every stored
// 0-based coordinate to 1-based.
func (p Position) ToGBFormat() string {
	switch p.Kind {
	case KindSingle:
		return fmt.Sprintf("%d", p.A+1)
	case KindBetween:
		return fmt.Sprintf("%d^%d", p.A+1, p.B+1)
	case KindSpan:
		before := ""
		if p.BeforeA {
			before = "<"
		}
		after := ""
		if p.AfterB {
			after = ">"
		}
		return fmt.Sprintf("%s%d..%s%d", before, p.A+1, after, p.B+1)
	case KindComplement:
		return fmt.Sprintf("complement(%s)", p.Child.ToGBFormat())
	case KindJoin:
		return fmt.Sprintf("join(%s)", positionList(p.Children))
	case KindOrder:
		return fmt.Sprintf("order(%s)", positionList(p.Children))
	case KindBond:
		return fmt.Sprintf("bond(%s)", positionList(p.Children))
	case KindOneOf:
		return fmt.Sprintf("one-of(%s)", positionList(p.Children))
	case KindExternal:
		if p.Child != nil {
			return fmt.Sprintf("%s:%s", p.Name, p.Child.ToGBFormat())
		}
		return p.Name
	case KindGap:
		if p.HasLength {
			return fmt.Sprintf("gap(%d)", p.GapLength)
		}
		return "gap()"
	default:
		return ""
	}
}

func positionList(ps []Position) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.ToGBFormat()
	}
	out := ""
	for i, part := range parts {
		if i > 0 {
			out += ","
		}
		out += part
	}
	return out
}

func (p Position) String() string {
	return p.ToGBFormat()
}
