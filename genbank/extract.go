package genbank

import "github.com/bebop/gbseq/position"

// ExtractRangeSeq returns the nucleotide slice for the exclusive range
// [start, end), taking circularity into account. The window may wrap more
// than once, in which case the wrapped portion is copied and repeated.
// When the window doesn't wrap, the returned slice may alias s.Seq.
func (s *Seq) ExtractRangeSeq(start, end int) []byte {
	length := s.Len()
	if len(s.Seq) != length {
		panic("genbank: ExtractRangeSeq requires the nucleotide buffer to be populated")
	}
	start, end = s.UnwrapRange(start, end)
	if end <= length {
		return s.Seq[start:end]
	}
	if !s.IsCircular() {
		panic("genbank: range exceeds sequence length on a linear sequence")
	}
	res := make([]byte, 0, end-start)
	for end != 0 {
		sliceEnd := end
		if sliceEnd > length {
			sliceEnd = length
		}
		end -= sliceEnd
		res = append(res, s.Seq[start:sliceEnd]...)
		start = 0
	}
	return res
}

// ExtractRangeNoTruncation extracts [start, end), keeping only features
// whose natural extent lies wholly within the window. Features that are
// out of bounds, ambiguous, or (on a linear sequence) reversed are
// dropped with a warning rather than failing the whole extraction. No
// metadata is copied onto the result besides the features and
// nucleotides.
func (s *Seq) ExtractRangeNoTruncation(start, end int) Seq {
	return s.ExtractRangeNoTruncationWithLogger(start, end, DefaultLogger)
}

// ExtractRangeNoTruncationWithLogger is ExtractRangeNoTruncation with an
// explicit warning sink, so callers can route the extractor's leniency
// through their own logger instead of the package-wide default.
func (s *Seq) ExtractRangeNoTruncationWithLogger(start, end int, logger Logger) Seq {
	start, end = s.UnwrapRange(start, end)
	shift := -start
	length := s.Len()

	var features []Feature
	for _, f := range s.Features {
		x, y, err := f.Pos.FindBounds()
		if err != nil {
			logger.Warnf("skipping feature %q with invalid position: %v", f.Kind, err)
			continue
		}
		if x < 0 || y < 0 || x >= length || y >= length || (!s.IsCircular() && y < x) {
			logger.Warnf("skipping feature %q with invalid position: %s", f.Kind, f.Pos.ToGBFormat())
			continue
		}
		x, y = s.UnwrapRange(x, y+1)
		y--
		if x < start {
			x += length
			y += length
		}
		if x >= start && y < end {
			relocated, err := s.RelocateFeature(f, shift)
			if err != nil {
				logger.Warnf("skipping feature %q with tricky position: %v", f.Kind, err)
				continue
			}
			features = append(features, relocated)
		}
	}

	res := Empty()
	res.Features = features
	res.Seq = s.ExtractRangeSeq(start, end)
	return res
}

// ExtractRange extracts [start, end), keeping any feature with a
// non-empty intersection and truncating it to the window. Like
// ExtractRangeNoTruncation, per-feature failures are warnings, not
// errors, and no metadata besides features and nucleotides is copied.
func (s *Seq) ExtractRange(start, end int) Seq {
	return s.ExtractRangeWithLogger(start, end, DefaultLogger)
}

// ExtractRangeWithLogger is ExtractRange with an explicit warning sink.
func (s *Seq) ExtractRangeWithLogger(start, end int, logger Logger) Seq {
	start, end = s.UnwrapRange(start, end)
	length := s.Len()

	shift := -start
	if s.IsCircular() {
		for shift < 0 {
			shift += length
		}
		for shift > length {
			shift -= length
		}
	}

	var features []Feature
	for _, f := range s.Features {
		x, y, err := f.Pos.FindBounds()
		if err != nil {
			logger.Warnf("skipping feature %q with tricky position: %v", f.Kind, err)
			continue
		}
		if x < 0 || y < 0 || x > length || y > length || (!s.IsCircular() && y < x) {
			logger.Warnf("skipping feature %q with tricky position: out of bounds", f.Kind)
			continue
		}
		relocated, err := s.RelocatePosition(f.Pos, shift)
		if err != nil {
			logger.Warnf("skipping feature %q with tricky position: %v", f.Kind, err)
			continue
		}
		if truncated, ok := position.Truncate(relocated, 0, end-start); ok {
			features = append(features, Feature{Kind: f.Kind, Pos: truncated, Qualifiers: f.Qualifiers})
		}
	}

	res := Empty()
	res.Features = features
	res.Seq = s.ExtractRangeSeq(start, end)
	return res
}
