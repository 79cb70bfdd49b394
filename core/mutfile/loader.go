// core/mutfile/loader.go
package mutfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Params are the experiment parameters for a mutation-rate run.
type Params struct {
	Mutations    []int // per-observation mutation counts
	GenomeLength int
	Generations  int
	Resamples    int
}

// Load reads a key=value parameter file. Recognized keys, by prefix:
// "mut" (comma-separated counts), "l" (genome length), "g"
// (generations), "b" (bootstrap resamples). "mut" is checked before the
// single-letter keys. All four are required; the error names every
// missing key.
func Load(path string) (Params, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Params{}, err
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, path)
}

// Parse reads parameters from r; name is used in error messages.
func Parse(r io.Reader, name string) (Params, error) {
	var p Params
	var haveMut, haveL, haveG, haveB bool

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		var err error
		switch {
		case strings.HasPrefix(key, "mut"):
			if p.Mutations, err = parseCounts(value); err != nil {
				return Params{}, fmt.Errorf("%s:%d bad mutation counts: %v", name, ln, err)
			}
			haveMut = true
		case strings.HasPrefix(key, "l"):
			if p.GenomeLength, err = strconv.Atoi(value); err != nil {
				return Params{}, fmt.Errorf("%s:%d bad genome length: %v", name, ln, err)
			}
			haveL = true
		case strings.HasPrefix(key, "g"):
			if p.Generations, err = strconv.Atoi(value); err != nil {
				return Params{}, fmt.Errorf("%s:%d bad generations: %v", name, ln, err)
			}
			haveG = true
		case strings.HasPrefix(key, "b"):
			if p.Resamples, err = strconv.Atoi(value); err != nil {
				return Params{}, fmt.Errorf("%s:%d bad bootstrap count: %v", name, ln, err)
			}
			haveB = true
		}
	}
	if err := sc.Err(); err != nil {
		return Params{}, err
	}

	var missing []string
	if !haveMut {
		missing = append(missing, "mut")
	}
	if !haveL {
		missing = append(missing, "l")
	}
	if !haveG {
		missing = append(missing, "g")
	}
	if !haveB {
		missing = append(missing, "b")
	}
	if len(missing) > 0 {
		return Params{}, fmt.Errorf("missing required parameters in %s: %s", name, strings.Join(missing, ", "))
	}
	return p, nil
}

func parseCounts(csv string) ([]int, error) {
	fields := strings.Split(csv, ",")
	counts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative count %d", n)
		}
		counts = append(counts, n)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no counts given")
	}
	return counts, nil
}
