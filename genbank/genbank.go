/*
Package genbank holds the annotated-sequence data model and the
coordinate algebra that makes it editable: relocating features,
reverse-complementing, extracting subranges, re-origin of circular
molecules, and the GenBank feature location grammar itself (see the
sibling position package).

The textual GenBank parser and writer are treated as external
collaborators: this package only defines the boundary (Writer, below) and
ships one concrete, intentionally small implementation of it so the
Position-to-text path has somewhere to land. Parsing GenBank files is out
of scope entirely.
*/
package genbank

import (
	"fmt"

	"github.com/bebop/gbseq/position"
)

// ReasonableSeqLen is an advisory preallocation ceiling for readers. It is
// not a hard limit: larger inputs must still succeed if memory permits.
var ReasonableSeqLen = 500 * 1000 * 1000

// Topology is whether a molecule is linear or circular.
type Topology int

const (
	Linear Topology = iota
	Circular
)

func (t Topology) String() string {
	if t == Circular {
		return "circular"
	}
	return "linear"
}

// Date is a calendar date with no leap-year validation, matching the
// GenBank LOCUS line's DD-MON-YYYY form.
type Date struct {
	year, month, day int
}

var monthNames = [...]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// NewDate constructs a Date from calendar components, failing if month or
// day are out of their nominal ranges.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("genbank: invalid date %04d-%02d-%02d", year, month, day)
	}
	return Date{year, month, day}, nil
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

func (d Date) String() string {
	return fmt.Sprintf("%02d-%s-%04d", d.day, monthNames[d.month-1], d.year)
}

// Source is the organism/source annotation of a Seq.
type Source struct {
	Source   string
	Organism string
}

// Reference is one literature reference attached to a Seq.
type Reference struct {
	Description string
	Authors     string
	Consortium  string
	Title       string
	Journal     string
	Pubmed      string
	Remark      string
}

// Feature binds a Position to a biological kind and its qualifiers.
// Qualifiers preserve order and allow repeated keys, since GenBank
// writers depend on both.
type Feature struct {
	Kind       string
	Pos        position.Position
	Qualifiers []Qualifier
}

// Qualifier is one /key=value (or valueless /key) annotation.
type Qualifier struct {
	Key      string
	Value    string
	HasValue bool
}

// QualifierValues returns the values of every qualifier with the given
// key, skipping valueless ones.
func (f Feature) QualifierValues(key string) []string {
	var out []string
	for _, q := range f.Qualifiers {
		if q.Key == key && q.HasValue {
			out = append(out, q.Value)
		}
	}
	return out
}

// Seq is an annotated molecule: nucleotides, topology, metadata, and
// features.
type Seq struct {
	Name         string
	Topology     Topology
	Date         *Date
	DeclaredLen  *int
	MoleculeType string
	Division     string
	Definition   string
	Accession    string
	Version      string
	Source       *Source
	Dblink       string
	Keywords     string
	References   []Reference
	Comments     []string
	Seq          []byte
	Contig       *position.Position
	Features     []Feature
}

// Empty returns a new, empty Seq with the same defaults the GenBank
// format itself assumes: linear topology and an "unknown" division.
func Empty() Seq {
	return Seq{
		Division: "UNK",
		Topology: Linear,
	}
}

// IsCircular reports whether s is a circular molecule.
func (s *Seq) IsCircular() bool {
	return s.Topology == Circular
}

// Len returns the effective length of s: DeclaredLen when present,
// otherwise len(s.Seq). When both are present they must agree; Len panics
// if they disagree.
func (s *Seq) Len() int {
	if s.DeclaredLen != nil {
		if len(s.Seq) != 0 && *s.DeclaredLen != len(s.Seq) {
			panic("genbank: declared length disagrees with sequence buffer length")
		}
		return *s.DeclaredLen
	}
	return len(s.Seq)
}
