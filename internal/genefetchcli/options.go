// internal/genefetchcli/options.go
package genefetchcli

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"seqlab/internal/entrez"
	"seqlab/internal/version"
)

// Options holds all CLI flags for genefetch.
type Options struct {
	Organism string
	Email    string
	Out      string

	// Tunables; a viper config file can supply defaults for these.
	BatchSize int
	RetMax    int
	Interval  time.Duration
	BaseURL   string

	Config    string // viper config name (no extension); "" = none
	Workspace string // directory searched for the config file

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: harvest gene names for an organism from NCBI

Version: %s

Resolves the organism to a TaxID, pages through its gene records, and
writes the de-duplicated gene names sorted, one per line. NCBI asks
bulk users to identify themselves, so --email is required.

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, merges the optional config
// file underneath them, and returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Organism, "organism", "", "organism name, e.g. 'Escherichia coli' [*]")
	fs.StringVar(&opt.Email, "email", "", "contact email sent to NCBI [*]")
	fs.StringVar(&opt.Out, "out", "", "output file for gene names [*]")
	fs.StringVar(&opt.Out, "o", "", "alias of --out")
	fs.IntVar(&opt.BatchSize, "batch-size", 500, "gene IDs per esummary call [500]")
	fs.IntVar(&opt.RetMax, "retmax", 10000, "gene IDs per esearch page [10000]")
	fs.DurationVar(&opt.Interval, "interval", entrez.DefaultInterval, "minimum spacing between NCBI requests [340ms]")
	fs.StringVar(&opt.BaseURL, "base-url", entrez.DefaultBaseURL, "E-utilities endpoint root")
	fs.StringVar(&opt.Config, "config", "", "viper config file name, without extension")
	fs.StringVar(&opt.Config, "c", "", "alias of --config")
	fs.StringVar(&opt.Workspace, "workspace", ".", "directory searched for the config file [.]")
	fs.StringVar(&opt.Workspace, "w", ".", "alias of --workspace")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress output [false]")
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

	if opt.Config != "" {
		if err := mergeConfig(fs, &opt); err != nil {
			return opt, err
		}
	}

	if opt.Organism == "" {
		return opt, errors.New("--organism is required")
	}
	if opt.Email == "" {
		return opt, errors.New("--email is required")
	}
	if opt.Out == "" {
		return opt, errors.New("--out is required")
	}
	if opt.BatchSize <= 0 {
		return opt, errors.New("--batch-size must be > 0")
	}
	if opt.RetMax <= 0 {
		return opt, errors.New("--retmax must be > 0")
	}
	if opt.Interval < 0 {
		return opt, errors.New("--interval must be ≥ 0")
	}
	return opt, nil
}

// mergeConfig fills in config-file values for every tunable the user
// did not set explicitly on the command line.
func mergeConfig(fs *flag.FlagSet, opt *Options) error {
	v := viper.New()
	v.SetConfigName(opt.Config)
	v.AddConfigPath(opt.Workspace)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config %q: %w", opt.Config, err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["email"] && v.IsSet("email") {
		opt.Email = v.GetString("email")
	}
	if !set["batch-size"] && v.IsSet("batch_size") {
		opt.BatchSize = v.GetInt("batch_size")
	}
	if !set["retmax"] && v.IsSet("retmax") {
		opt.RetMax = v.GetInt("retmax")
	}
	if !set["interval"] && v.IsSet("interval") {
		opt.Interval = v.GetDuration("interval")
	}
	if !set["base-url"] && v.IsSet("base_url") {
		opt.BaseURL = v.GetString("base_url")
	}
	return nil
}
