// internal/mutratecli/options.go
package mutratecli

import (
	"errors"
	"flag"
	"fmt"

	"seqlab/internal/version"
)

// Options holds all CLI flags for mutrate.
type Options struct {
	Input      string
	Out        string // result path; "" = stdout
	Output     string // text | json
	Confidence float64
	Seed       int64 // 0 = entropy
	Quiet      bool
	Version    bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: mutation rate with bootstrap confidence intervals

Version: %s

Reads a parameter file (mut=<counts>, l=<genome length>, g=<generations>,
b=<resamples>) and reports the mean per-site per-generation rate with a
bootstrap confidence interval.

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "input", "", "input mutation parameter file [*]")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Out, "out", "", "result file path (default: stdout)")
	fs.StringVar(&opt.Out, "o", "", "alias of --out")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.Float64Var(&opt.Confidence, "confidence", 0.95, "confidence level in (0,1) [0.95]")
	fs.Int64Var(&opt.Seed, "seed", 0, "RNG seed for reproducible resampling (0 = entropy) [0]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Input == "" {
		return opt, errors.New("--input is required")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Confidence <= 0 || opt.Confidence >= 1 {
		return opt, errors.New("--confidence must be in (0,1)")
	}
	return opt, nil
}
