package genbank

// SetOrigin returns a copy of s, a circular molecule, rotated so that
// origin becomes coordinate zero. Features whose relocation fails (which,
// per RelocatePosition/WrapPosition, can only happen on malformed input)
// are dropped with a warning rather than failing the whole rotation.
func (s *Seq) SetOrigin(origin int) Seq {
	return s.SetOriginWithLogger(origin, DefaultLogger)
}

// SetOriginWithLogger is SetOrigin with an explicit warning sink for
// dropped features.
func (s *Seq) SetOriginWithLogger(origin int, logger Logger) Seq {
	if !s.IsCircular() {
		panic("genbank: SetOrigin requires a circular sequence")
	}
	if origin < 0 || origin >= s.Len() {
		panic("genbank: SetOrigin requires 0 <= origin < len")
	}

	rotated := s.ExtractRangeSeq(origin, origin)

	var features []Feature
	for _, f := range s.Features {
		relocated, err := s.RelocateFeature(f, -origin)
		if err != nil {
			logger.Warnf("dropping feature %q while setting origin: %v", f.Kind, err)
			continue
		}
		features = append(features, relocated)
	}

	res := *s
	res.Seq = rotated
	res.Features = features
	return res
}
