// internal/seqstatapp/app.go
package seqstatapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"seqlab-core/seqstat"
	"seqlab/internal/cmdutil"
	"seqlab/internal/seqstatcli"
	"seqlab/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := seqstatcli.NewFlagSet("seqstat")
	fs.SetOutput(io.Discard)

	opts, err := seqstatcli.ParseArgs(fs, argv)
	if err != nil {
		return cmdutil.UsageExit(fs, outw, stderr, err)
	}

	seq1, seq2, err := loadPair(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	report, err := seqstat.Stats(seq1, seq2)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	// The output file is only created once the analysis has succeeded.
	of, err := os.Create(opts.Output)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	werr := writers.WriteSeqStats(of, report)
	if cerr := of.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 1
	}
	return cmdutil.Flush(outw, stderr)
}

// loadPair reads the two-line input format: "<label> <sequence>" per
// line, sequence being the second whitespace-delimited token.
func loadPair(path string) (string, string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer func() { _ = fh.Close() }()

	var lines []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", "", err
	}
	if len(lines) != 2 {
		return "", "", fmt.Errorf("%s: input file must contain exactly two lines, got %d", path, len(lines))
	}

	seqs := make([]string, 2)
	for i, line := range lines {
		f := strings.Fields(line)
		if len(f) < 2 {
			return "", "", fmt.Errorf("%s:%d missing sequence token", path, i+1)
		}
		seqs[i] = f[1]
	}
	return seqs[0], seqs[1], nil
}
