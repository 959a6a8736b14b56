package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeAdjacent(t *testing.T) {
	cases := []struct {
		name string
		in   []Position
		want []Position
	}{
		{
			"non-adjacent spans stay separate",
			[]Position{SimpleSpan(0, 3), SimpleSpan(5, 7)},
			[]Position{SimpleSpan(0, 3), SimpleSpan(5, 7)},
		},
		{
			"adjacent spans merge",
			[]Position{SimpleSpan(0, 4), SimpleSpan(5, 7)},
			[]Position{SimpleSpan(0, 7)},
		},
		{
			"span then single merges",
			[]Position{SimpleSpan(0, 4), Single(5)},
			[]Position{SimpleSpan(0, 5)},
		},
		{
			"single then span merges",
			[]Position{Single(0), SimpleSpan(1, 5)},
			[]Position{SimpleSpan(0, 5)},
		},
		{
			"two adjacent singles merge",
			[]Position{Single(0), Single(1)},
			[]Position{SimpleSpan(0, 1)},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, mergeAdjacent(c.in))
		})
	}
}

func TestMergeAdjacentPreservesFuzzyFlags(t *testing.T) {
	merged := mergeAdjacent([]Position{
		Span(1, Before(true), 2, After(false)),
		Span(3, Before(false), 4, After(true)),
	})
	assert.Equal(t, "join(<2..>5)", Join(merged...).ToGBFormat())
}

func TestSimplifyFlattensNestedJoin(t *testing.T) {
	p := Join(Join(SimpleSpan(0, 2), SimpleSpan(4, 6)), SimpleSpan(8, 9))
	res, err := Simplify(p)
	assert.NoError(t, err)
	assert.Equal(t, "join(1..3,5..7,9..10)", res.ToGBFormat())
}

func TestSimplifyCollapsesSingleElementJoin(t *testing.T) {
	res, err := Simplify(Join(Single(4)))
	assert.NoError(t, err)
	assert.Equal(t, Single(4), res)
}

func TestSimplifyCollapsesSinglePointSpan(t *testing.T) {
	res, err := Simplify(SimpleSpan(3, 3))
	assert.NoError(t, err)
	assert.Equal(t, Single(3), res)
}

func TestSimplifyEmptyJoinFails(t *testing.T) {
	_, err := Simplify(Join())
	assert.Error(t, err)
	assert.Equal(t, Empty, err.(*Error).Kind)
}

func TestSimplifyIdempotent(t *testing.T) {
	p := Join(Single(0), SimpleSpan(1, 5), SimpleSpan(10, 12))
	once, err := Simplify(p)
	assert.NoError(t, err)
	twice, err := Simplify(once)
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
}
