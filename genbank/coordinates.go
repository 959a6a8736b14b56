package genbank

import (
	"github.com/bebop/gbseq/position"
	"github.com/pkg/errors"
)

// UnwrapRange normalizes a half-open exclusive range to canonical form
// (first, last) with 0 <= first < Len() and first < last.
//
// On a linear sequence, start and end must already fall inside [0, len];
// anything else is a caller bug, so it panics rather than returning an
// error.
//
// On a circular sequence, any start/end -- including negative ones -- is
// accepted: the range is shifted by multiples of Len() until 0 <= start <
// len. If start >= end to begin with, the range is assumed to wrap around
// the origin, and end grows past len to express that. A range wrapping
// more than once is accepted here but is not checked for.
func (s *Seq) UnwrapRange(start, end int) (int, int) {
	length := s.Len()
	if !s.IsCircular() {
		if !(start < end) || !(start >= 0 && start < length && end > 0 && end <= length) {
			panic("genbank: range out of bounds for linear sequence")
		}
		return start, end
	}

	if start >= end {
		end += length
	}
	for start >= length {
		start -= length
		end -= length
	}
	for start < 0 {
		start += length
		end += length
	}
	return start, end
}

// RangeToPosition converts an exclusive [start, end) range into a
// Position in this sequence's coordinate space.
func (s *Seq) RangeToPosition(start, end int) position.Position {
	length := s.Len()
	if !s.IsCircular() {
		if start+1 == end {
			return position.Single(start)
		}
		return position.SimpleSpan(start, end-1)
	}

	start, end = s.UnwrapRange(start, end)
	switch {
	case end > length:
		if end >= length*2 {
			panic("genbank: range wraps around more than once")
		}
		return position.Join(
			position.SimpleSpan(start, length-1),
			position.SimpleSpan(0, end-length-1),
		)
	case start == end:
		return position.Single(start)
	default:
		return position.SimpleSpan(start, end-1)
	}
}

// UnwrapPosition rewrites a Position whose bounds may be reversed (last <
// first, signalling an origin-crossing span on a circular sequence) into
// an ascending representation: every coordinate v < first becomes v +
// Len(). Fails with OutOfBounds if the bounds don't fit in [0, len), or if
// they're reversed on a linear sequence.
func (s *Seq) UnwrapPosition(p position.Position) (position.Position, error) {
	first, last, err := p.FindBounds()
	if err != nil {
		return position.Position{}, err
	}
	length := s.Len()
	if first < 0 || last >= length {
		return position.Position{}, outOfBounds(p)
	}
	if last < first && !s.IsCircular() {
		return position.Position{}, outOfBounds(p)
	}
	return position.Transform(p,
		func(p position.Position) (position.Position, error) { return p, nil },
		func(v int) (int, error) {
			if v < first {
				return v + length, nil
			}
			return v, nil
		},
	)
}

// WrapPosition is the inverse of UnwrapPosition: coordinates extending
// past the end of the sequence are folded back to the origin. A Span
// whose right endpoint still exceeds the sequence after reduction is
// split into a Join straddling the origin. The result is simplified
// before it's returned.
func (s *Seq) WrapPosition(p position.Position) (position.Position, error) {
	length := s.Len()
	res, err := position.Transform(p,
		func(p position.Position) (position.Position, error) {
			switch p.Kind {
			case position.KindSingle:
				a := p.A
				for a >= length {
					a -= length
				}
				return position.Single(a), nil
			case position.KindSpan:
				a, b := p.A, p.B
				for a >= length {
					a -= length
					b -= length
				}
				if b < length {
					return position.Span(a, p.BeforeA, b, p.AfterB), nil
				}
				return position.Join(
					position.Span(a, p.BeforeA, length-1, false),
					position.Span(0, false, b-length, p.AfterB),
				), nil
			default:
				return p, nil
			}
		},
		func(v int) (int, error) { return v, nil },
	)
	if err != nil {
		return position.Position{}, err
	}
	return position.Simplify(res)
}

// RelocatePosition translates every coordinate in p by shift, which may
// be negative. On a circular sequence, shift is first reduced modulo
// Len() into [0, len) and the result is wrapped; on a linear sequence the
// shift is applied directly with no wrapping.
func (s *Seq) RelocatePosition(p position.Position, shift int) (position.Position, error) {
	if !s.IsCircular() {
		return position.Transform(p,
			func(p position.Position) (position.Position, error) { return p, nil },
			func(v int) (int, error) { return v + shift, nil },
		)
	}

	length := s.Len()
	for shift < 0 {
		shift += length
	}
	for shift >= length {
		shift -= length
	}
	moved, err := position.Transform(p,
		func(p position.Position) (position.Position, error) { return p, nil },
		func(v int) (int, error) { return v + shift, nil },
	)
	if err != nil {
		// Transform cannot fail here: neither callback above returns an
		// error.
		return position.Position{}, err
	}
	return s.WrapPosition(moved)
}

// RelocateFeature shifts f's position forwards by shift NTs (can be
// negative), returning a copy of f with the new Pos.
func (s *Seq) RelocateFeature(f Feature, shift int) (Feature, error) {
	pos, err := s.RelocatePosition(f.Pos, shift)
	if err != nil {
		return Feature{}, errors.Wrapf(err, "relocating feature %q", f.Kind)
	}
	f.Pos = pos
	return f, nil
}

// RevcompPosition rewrites p for the reverse strand: combinator children
// are reversed, Span/Between endpoints are swapped (with fuzzy flags
// following the endpoint they were attached to), every coordinate leaf v
// becomes Len()-1-v, and finally the outermost Complement is toggled.
func (s *Seq) RevcompPosition(p position.Position) position.Position {
	length := s.Len()
	res, err := position.Transform(p,
		func(p position.Position) (position.Position, error) {
			switch p.Kind {
			case position.KindJoin, position.KindOrder, position.KindBond, position.KindOneOf:
				p.Children = reversedCopy(p.Children)
			}
			switch p.Kind {
			case position.KindSpan:
				return position.Span(p.B, position.Before(bool(p.AfterB)), p.A, position.After(bool(p.BeforeA))), nil
			case position.KindBetween:
				return position.Between(p.B, p.A), nil
			default:
				return p, nil
			}
		},
		func(v int) (int, error) { return length - 1 - v, nil },
	)
	if err != nil {
		// Transform cannot fail here: neither callback above returns an
		// error.
		panic(err)
	}
	if res.Kind == position.KindComplement {
		return *res.Child
	}
	return position.Complement(res)
}

func reversedCopy(ps []position.Position) []position.Position {
	res := make([]position.Position, len(ps))
	for i, p := range ps {
		res[len(ps)-1-i] = p
	}
	return res
}

// RevcompFeature returns a copy of f reverse-complemented against s.
func (s *Seq) RevcompFeature(f Feature) Feature {
	f.Pos = s.RevcompPosition(f.Pos)
	return f
}

func outOfBounds(p position.Position) error {
	pp := p
	return &position.Error{Kind: position.OutOfBounds, Pos: &pp}
}
