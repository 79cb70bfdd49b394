// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID  string
	Seq string
}

// Read parses every record from r using alpha (e.g. alphabet.DNA or
// alphabet.Protein). The context is checked between records so a
// cancelled run stops mid-file.
func Read(ctx context.Context, r io.Reader, alpha alphabet.Alphabet) ([]Record, error) {
	tmpl := linear.NewSeq("", nil, alpha)
	sc := seqio.NewScanner(fasta.NewReader(r, tmpl))

	var records []Record
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s := sc.Seq().(*linear.Seq)
		records = append(records, Record{ID: s.Name(), Seq: s.Seq.String()})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("fasta read: %w", err)
	}
	return records, nil
}

// ReadPath opens path (gzip and "-" accepted) and parses all records.
func ReadPath(ctx context.Context, path string, alpha alphabet.Alphabet) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(ctx, rc, alpha)
}
