// internal/pathmutcli/options.go
package pathmutcli

import (
	"errors"
	"flag"
	"fmt"

	"seqlab/internal/version"
)

// Options holds all CLI flags for pathmut.
type Options struct {
	Input   string // aligned FASTA; "-" = stdin
	Out     string // result path; "" = stdout
	Output  string // text | json
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: amino-acid positions unique to pathogenic strains

Version: %s

Reads a pre-aligned FASTA whose headers start with "pathogenic|" or
"non_pathogenic|" and reports every column where the two classes share
no residue.

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

	fs.StringVar(&opt.Input, "input", "", "aligned FASTA file, '-' for stdin [*]")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Out, "out", "", "result file path (default: stdout)")
	fs.StringVar(&opt.Out, "o", "", "alias of --out")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
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
	return opt, nil
}
