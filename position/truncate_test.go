package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateSingle(t *testing.T) {
	res, ok := Truncate(Single(0), 0, 1)
	assert.True(t, ok)
	assert.Equal(t, Single(0), res)

	_, ok = Truncate(Single(0), 1, 2)
	assert.False(t, ok)
}

func TestTruncateSpanNeitherEndpointInside(t *testing.T) {
	res, ok := Truncate(SimpleSpan(0, 2), 1, 2)
	assert.True(t, ok)
	assert.Equal(t, Single(1), res)

	_, ok = Truncate(SimpleSpan(0, 1), 3, 4)
	assert.False(t, ok)
}

func TestTruncateSpanBothEndpointsInside(t *testing.T) {
	res, ok := Truncate(SimpleSpan(0, 1), 0, 2)
	assert.True(t, ok)
	assert.Equal(t, SimpleSpan(0, 1), res)
}

func TestTruncateSpanStraddlesWindow(t *testing.T) {
	res, ok := Truncate(SimpleSpan(0, 9), 2, 5)
	assert.True(t, ok)
	assert.Equal(t, SimpleSpan(2, 4), res)
}

func TestTruncateComplement(t *testing.T) {
	res, ok := Truncate(Complement(SimpleSpan(0, 1)), 0, 2)
	assert.True(t, ok)
	assert.Equal(t, Complement(SimpleSpan(0, 1)), res)

	_, ok = Truncate(Complement(SimpleSpan(0, 1)), 10, 20)
	assert.False(t, ok)
}

func TestTruncateJoinFiltersAndSimplifies(t *testing.T) {
	p := Join(SimpleSpan(0, 2), SimpleSpan(4, 6))
	res, ok := Truncate(p, 0, 3)
	assert.True(t, ok)
	assert.Equal(t, SimpleSpan(0, 2), res)

	_, ok = Truncate(p, 10, 30)
	assert.False(t, ok)
}

func TestTruncateOrderBondOneOfPreserveCombinator(t *testing.T) {
	res, ok := Truncate(Order(SimpleSpan(0, 2), SimpleSpan(4, 6)), 0, 3)
	assert.True(t, ok)
	assert.Equal(t, Order(SimpleSpan(0, 2)), res)
}

func TestTruncateExternalAndGapPassThrough(t *testing.T) {
	res, ok := Truncate(ExternalRef("X", nil), 0, 1)
	assert.True(t, ok)
	assert.Equal(t, ExternalRef("X", nil), res)

	res, ok = Truncate(Gap(3, true), 100, 200)
	assert.True(t, ok)
	assert.Equal(t, Gap(3, true), res)
}

func TestTruncateContainmentProperty(t *testing.T) {
	p := Join(SimpleSpan(0, 9), Single(15))
	start, end := 2, 8
	res, ok := Truncate(p, start, end)
	if !ok {
		return
	}
	lo, hi, err := res.FindBounds()
	assert.NoError(t, err)
	assert.True(t, lo >= start && lo < end)
	assert.True(t, hi >= start && hi < end)
}
