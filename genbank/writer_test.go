package genbank

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bebop/gbseq/position"
	"github.com/stretchr/testify/assert"
)

func TestDefaultWriterRendersFeaturesAndWrapsQualifiers(t *testing.T) {
	s := Empty()
	s.Name = "TESTSEQ"
	s.Seq = []byte("acgtacgtac")
	s.Features = []Feature{
		{
			Kind: "CDS",
			Pos:  position.SimpleSpan(0, 9),
			Qualifiers: []Qualifier{
				{Key: "translation", Value: strings.Repeat("MKV ", 30), HasValue: true},
			},
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, s.Write(&buf))

	out := buf.String()
	assert.Contains(t, out, "LOCUS")
	assert.Contains(t, out, "CDS")
	assert.Contains(t, out, "1..10")
	assert.Contains(t, out, "//")
	// A 120-char qualifier value of space-separated words must have been
	// folded across more than one line by go-wordwrap; unfolded, the
	// output has exactly 7 lines.
	assert.True(t, strings.Count(out, "\n") > 7)
}

func TestInjectableLoggerCapturesWarnings(t *testing.T) {
	s := Empty()
	s.Seq = []byte("AAAA")
	s.Features = []Feature{{Kind: "bad", Pos: position.SimpleSpan(10, 20)}}

	logger := &capturingLogger{}
	res := s.ExtractRangeWithLogger(0, 4, logger)
	assert.Empty(t, res.Features)
	assert.NotEmpty(t, logger.warnings)
}
