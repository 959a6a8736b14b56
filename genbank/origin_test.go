package genbank

import (
	"testing"

	"github.com/bebop/gbseq/position"
	"github.com/stretchr/testify/assert"
)

func TestSetOriginIsInvertible(t *testing.T) {
	s := circularSeq("0123456789")
	s.Features = []Feature{
		{Kind: "a", Pos: position.SimpleSpan(2, 6)},
		{Kind: "b", Pos: position.SimpleSpan(0, 9)},
		{Kind: "c", Pos: position.Join(position.SimpleSpan(7, 9), position.SimpleSpan(0, 3))},
		{Kind: "d", Pos: position.Single(0)},
	}

	// Rotating to a new origin and back by the complementary offset must
	// restore every feature's position exactly.
	for i := 1; i < 9; i++ {
		rotated := s.SetOrigin(i)
		rotated2 := rotated.SetOrigin(10 - i)
		assert.Equal(t, s.Features, rotated2.Features, "i=%d", i)
	}
}

func TestSetOriginRequiresCircular(t *testing.T) {
	s := Empty()
	s.Seq = []byte("0123")
	assert.Panics(t, func() { s.SetOrigin(1) })
}

func TestSetOriginRotatesSequence(t *testing.T) {
	s := circularSeq("0123456789")
	rotated := s.SetOrigin(3)
	assert.Equal(t, "3456789012", string(rotated.Seq))
}
