// internal/genefetchapp/app.go
package genefetchapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/cheggaaa/pb.v1"

	"seqlab/internal/cmdutil"
	"seqlab/internal/entrez"
	"seqlab/internal/genefetchcli"
	"seqlab/internal/version"
	"seqlab/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := genefetchcli.NewFlagSet("genefetch")
	fs.SetOutput(io.Discard)

	opts, err := genefetchcli.ParseArgs(fs, argv)
	if err != nil {
		return cmdutil.UsageExit(fs, outw, stderr, err)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "genefetch version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr)
	}

	status := func(format string, a ...any) {
		if !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, format+"\n", a...)
		}
	}

	client := entrez.NewClient(opts.Email, opts.Interval)
	client.BaseURL = opts.BaseURL

	status("Searching for species %s in the NCBI database...", opts.Organism)
	taxid, err := client.TaxonomyID(parent, opts.Organism)
	if errors.Is(err, entrez.ErrNotFound) {
		_, _ = fmt.Fprintf(stderr, "could not find %s in NCBI; are you sure this species exists?\n", opts.Organism)
		return 1
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	status("Found your species! It goes by taxid %s in the NCBI database.", taxid)

	status("Searching for %s genes...", opts.Organism)
	geneIDs, err := client.GeneIDs(parent, taxid, opts.RetMax)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	status("NCBI stores %d genes for %s. Searching for their names...", len(geneIDs), opts.Organism)

	names, err := fetchNames(parent, client, geneIDs, opts.BatchSize, opts.Quiet, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	status("Writing %d gene names to %s...", len(names), opts.Out)
	of, err := os.Create(opts.Out)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	werr := writers.WriteGeneNames(of, names)
	if cerr := of.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 1
	}
	status("Done!")
	return cmdutil.Flush(outw, stderr)
}

// fetchNames pulls esummary batches and returns the unique gene names.
func fetchNames(ctx context.Context, client *entrez.Client, ids []string, batchSize int, quiet bool, stderr io.Writer) ([]string, error) {
	batches := (len(ids) + batchSize - 1) / batchSize

	var bar *pb.ProgressBar
	if !quiet && batches > 0 {
		bar = pb.New(batches)
		bar.Output = stderr
		bar.Start()
	}

	set := map[string]struct{}{}
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		names, err := client.GeneNames(ctx, ids[start:end])
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			return nil, err
		}
		for _, n := range names {
			set[n] = struct{}{}
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}
