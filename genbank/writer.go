package genbank

import (
	"fmt"
	"io"
	"strings"

	"github.com/bebop/gbseq/transform"
	"github.com/lunny/log"
	"github.com/mitchellh/go-wordwrap"
)

// Logger is the injectable warning sink the extractor and origin
// rotation use for per-feature failures they choose to tolerate rather
// than propagate. A nil Logger is never passed internally; DefaultLogger
// is used wherever a caller doesn't supply one.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// DefaultLogger is used by every exported method that doesn't take an
// explicit Logger (ExtractRange, ExtractRangeNoTruncation, SetOrigin).
// Tests and callers that want to capture or silence warnings
// should reassign this, or call the *WithLogger variant directly.
var DefaultLogger Logger = lunnyLogger{}

type lunnyLogger struct{}

func (lunnyLogger) Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Writer is the external collaborator that encodes a Seq back to GenBank
// text. The coordinate core never formats a full record itself -- it only
// produces Position trees via ToGBFormat and Seq values for a Writer to
// consume. DefaultWriter is one concrete, intentionally minimal
// implementation so this boundary has somewhere to land; a production
// GenBank encoder would replace it wholesale.
type Writer interface {
	Write(w io.Writer, s *Seq) error
}

// writerFn mirrors the teacher's readFileFn-style indirection
// (bio/genbank/genbank.go): a package variable holding the active
// implementation, swappable in tests or by callers linking in a fuller
// encoder.
var writerFn Writer = DefaultWriter{}

// Write delegates to the active Writer implementation.
func (s *Seq) Write(w io.Writer) error {
	return writerFn.Write(w, s)
}

// DefaultWriter renders the LOCUS line, a minimal FEATURES block (using
// Position.ToGBFormat for every feature's location, and go-wordwrap to
// fold long qualifier lines), and the ORIGIN sequence block. Folding
// happens only at whitespace; a value with no whitespace stays on one
// line however long it is. It does not attempt to reproduce every GenBank
// metadata line; that's the job of a full writer, which is out of this
// core's scope.
type DefaultWriter struct{}

const qualifierWrapWidth = 58

func (DefaultWriter) Write(w io.Writer, s *Seq) error {
	if _, err := fmt.Fprintf(w, "LOCUS       %-16s %d bp    DNA     %s\n",
		s.Name, s.Len(), s.Topology); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "FEATURES             Location/Qualifiers"); err != nil {
		return err
	}
	for _, f := range s.Features {
		if _, err := fmt.Fprintf(w, "     %-16s%s\n", f.Kind, f.Pos.ToGBFormat()); err != nil {
			return err
		}
		for _, q := range f.Qualifiers {
			line := "/" + q.Key
			if q.HasValue {
				line += "=\"" + q.Value + "\""
			}
			wrapped := wordwrap.WrapString(line, qualifierWrapWidth)
			for _, segment := range strings.Split(wrapped, "\n") {
				if _, err := fmt.Fprintf(w, "                     %s\n", segment); err != nil {
					return err
				}
			}
		}
	}
	if _, err := fmt.Fprintln(w, "ORIGIN"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", s.Seq); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "//")
	return err
}

// Revcomp returns the reverse complement of s: nucleotides via
// transform.ReverseComplement, every feature via RevcompFeature. Features
// are never dropped by this operation -- RevcompPosition cannot fail.
func (s *Seq) Revcomp() Seq {
	features := make([]Feature, len(s.Features))
	for i, f := range s.Features {
		features[i] = s.RevcompFeature(f)
	}
	res := *s
	res.Seq = []byte(transform.ReverseComplement(string(s.Seq)))
	res.Features = features
	return res
}
