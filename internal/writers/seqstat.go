// internal/writers/seqstat.go
package writers

import (
	"fmt"
	"io"

	"seqlab-core/seqstat"
)

// WriteSeqStats prints the five-line pair report. The layout is fixed;
// downstream course tooling greps these exact prefixes.
func WriteSeqStats(w io.Writer, r seqstat.Report) error {
	_, err := fmt.Fprintf(w,
		"seq1 length: %d\nseq2 length: %d\nseq1 GC content: %.1f%%\nseq2 GC content: %.1f%%\nLongest common substring: %s\n",
		r.Len1, r.Len2, r.GC1, r.GC2, r.LCS,
	)
	return err
}
