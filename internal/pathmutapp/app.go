// internal/pathmutapp/app.go
package pathmutapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"

	"seqlab-core/fasta"
	"seqlab-core/variant"
	"seqlab/internal/cmdutil"
	"seqlab/internal/pathmutcli"
	"seqlab/internal/version"
	"seqlab/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := pathmutcli.NewFlagSet("pathmut")
	fs.SetOutput(io.Discard)

	opts, err := pathmutcli.ParseArgs(fs, argv)
	if err != nil {
		return cmdutil.UsageExit(fs, outw, stderr, err)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pathmut version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr)
	}

	records, err := fasta.ReadPath(parent, opts.Input, alphabet.Protein)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	seqs := make([]variant.Sequence, 0, len(records))
	for _, r := range records {
		seqs = append(seqs, variant.Sequence{
			ID:    r.ID,
			Class: variant.ClassOf(r.ID),
			Seq:   r.Seq,
		})
	}
	aln, err := variant.New(seqs)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	positions := aln.UniquePositions()
	if len(positions) == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no positions unique to pathogenic strains")
	}

	dst := io.Writer(outw)
	var of *os.File
	if opts.Out != "" {
		if of, err = os.Create(opts.Out); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		dst = of
	}

	switch opts.Output {
	case "json":
		err = writers.WriteUniquePositionsJSON(dst, positions)
	default:
		err = writers.WriteUniquePositionsText(dst, positions)
	}
	if of != nil {
		if cerr := of.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return cmdutil.Flush(outw, stderr)
}
