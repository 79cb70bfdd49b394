// core/variant/variant.go
package variant

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Class labels expected in FASTA headers, before the first '|'.
const (
	Pathogenic    = "pathogenic"
	NonPathogenic = "non_pathogenic"
)

var (
	ErrNotAligned   = errors.New("not all sequences have the same length; ensure input is pre-aligned")
	ErrMissingClass = errors.New("input must contain at least one pathogenic and one non_pathogenic sequence")
)

// Sequence is one aligned entry with its class label.
type Sequence struct {
	ID    string
	Class string
	Seq   string
}

// Alignment is a set of equal-length classified sequences.
type Alignment struct {
	seqs    []Sequence
	columns int
}

// ClassOf extracts the class label from a FASTA ID of the form
// "<class>|<strain>". An ID without '|' is its own label.
func ClassOf(id string) string {
	class, _, _ := strings.Cut(id, "|")
	return class
}

// New builds an alignment from labelled sequences. Lengths must agree,
// labels must be pathogenic or non_pathogenic, and both classes must be
// present.
func New(seqs []Sequence) (*Alignment, error) {
	if len(seqs) == 0 {
		return nil, errors.New("no sequences")
	}
	cols := len(seqs[0].Seq)
	var havePath, haveNon bool
	for _, s := range seqs {
		if len(s.Seq) != cols {
			return nil, ErrNotAligned
		}
		switch s.Class {
		case Pathogenic:
			havePath = true
		case NonPathogenic:
			haveNon = true
		default:
			return nil, fmt.Errorf("unknown class %q in %q", s.Class, s.ID)
		}
	}
	if !havePath || !haveNon {
		return nil, ErrMissingClass
	}
	return &Alignment{seqs: seqs, columns: cols}, nil
}

// Position is one alignment column where the pathogenic and
// non-pathogenic residue sets are disjoint. Pos is 1-based. Residue
// sets are sorted ascending.
type Position struct {
	Pos           int
	Pathogenic    []string
	NonPathogenic []string
}

// UniquePositions returns, in column order, every position whose
// pathogenic residues never occur in any non-pathogenic sequence and
// vice versa. Gap characters count as residues.
func (a *Alignment) UniquePositions() []Position {
	var out []Position
	for col := 0; col < a.columns; col++ {
		pathSet := map[byte]bool{}
		nonSet := map[byte]bool{}
		for _, s := range a.seqs {
			if s.Class == Pathogenic {
				pathSet[s.Seq[col]] = true
			} else {
				nonSet[s.Seq[col]] = true
			}
		}
		if intersects(pathSet, nonSet) {
			continue
		}
		out = append(out, Position{
			Pos:           col + 1,
			Pathogenic:    sorted(pathSet),
			NonPathogenic: sorted(nonSet),
		})
	}
	return out
}

func intersects(a, b map[byte]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}

func sorted(set map[byte]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, string(k))
	}
	sort.Strings(out)
	return out
}
