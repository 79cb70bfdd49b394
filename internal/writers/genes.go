// internal/writers/genes.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// WriteGeneNames prints the de-duplicated names sorted, one per line.
// The input is not mutated.
func WriteGeneNames(w io.Writer, names []string) error {
	list := append([]string(nil), names...)
	sort.Strings(list)
	for _, n := range list {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
