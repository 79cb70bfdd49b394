// internal/writers/pathmut.go
package writers

import (
	"fmt"
	"io"
	"strings"

	"seqlab-core/variant"
	"seqlab/internal/jsonutil"
	"seqlab/pkg/api"
)

func residueSet(rs []string) string {
	return "{" + strings.Join(rs, ", ") + "}"
}

// WriteUniquePositionsText prints one line per position with both
// residue sets rendered sorted, e.g.
//
//	Position 42: Pathogenic -> {D}, Non-Pathogenic -> {G, N}
func WriteUniquePositionsText(w io.Writer, positions []variant.Position) error {
	for _, p := range positions {
		_, err := fmt.Fprintf(w, "Position %d: Pathogenic -> %s, Non-Pathogenic -> %s\n",
			p.Pos, residueSet(p.Pathogenic), residueSet(p.NonPathogenic))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteUniquePositionsJSON writes the positions as a v1 JSON array.
func WriteUniquePositionsJSON(w io.Writer, positions []variant.Position) error {
	out := make([]api.UniquePositionV1, 0, len(positions))
	for _, p := range positions {
		out = append(out, api.UniquePositionV1{
			Position:      p.Pos,
			Pathogenic:    append([]string(nil), p.Pathogenic...),
			NonPathogenic: append([]string(nil), p.NonPathogenic...),
		})
	}
	return jsonutil.EncodePretty(w, out)
}
