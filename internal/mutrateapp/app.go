// internal/mutrateapp/app.go
package mutrateapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"seqlab-core/bootstrap"
	"seqlab-core/mutfile"
	"seqlab/internal/cmdutil"
	"seqlab/internal/mutratecli"
	"seqlab/internal/version"
	"seqlab/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := mutratecli.NewFlagSet("mutrate")
	fs.SetOutput(io.Discard)

	opts, err := mutratecli.ParseArgs(fs, argv)
	if err != nil {
		return cmdutil.UsageExit(fs, outw, stderr, err)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "mutrate version %s\n", version.Version)
		return cmdutil.Flush(outw, stderr)
	}

	params, err := mutfile.Load(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if params.Resamples < 100 {
		cmdutil.Warnf(stderr, opts.Quiet, "only %d bootstrap resamples; the interval will be coarse", params.Resamples)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	est, err := bootstrap.CI(params.Mutations, params.GenomeLength, params.Generations,
		params.Resamples, opts.Confidence, rng)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
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
		err = writers.WriteMutationRateJSON(dst, est, len(params.Mutations), params.Resamples)
	default:
		err = writers.WriteMutationRateText(dst, est)
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
