// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"purisim/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Pipeline definition
	ModulesDir string
	Run        []string
	Sets       []string

	// Output
	Output string
	Pretty bool
	Sort   bool
	Header bool // true unless --no-header

	// Logging
	Quiet   bool
	Verbose bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: protein purification workflow simulator

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Pipeline definition
	fs.StringVar(&opt.ModulesDir, "modules", "", "directory of module definition files (.json/.yaml) [*]")
	run := ""
	fs.StringVar(&run, "run", "", "comma-separated module ids to execute in order [*]")
	var sets stringSlice
	fs.Var(&sets, "set", "setting as 'module:setting=value' (repeatable)")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | fasta [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "virtual gel block (text) / indented JSON [false]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort final pool for determinism (accession, weight) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	// Logging
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug-level progress logging [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

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
	opt.Sets = sets
	opt.Header = !noHeader
	for _, id := range strings.Split(run, ",") {
		if id = strings.TrimSpace(id); id != "" {
			opt.Run = append(opt.Run, id)
		}
	}

	// Validation
	if opt.ModulesDir == "" {
		return opt, errors.New("--modules is required")
	}
	if len(opt.Run) == 0 {
		return opt, errors.New("--run requires at least one module id")
	}
	if opt.Output != "text" && opt.Output != "json" && opt.Output != "fasta" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Quiet && opt.Verbose {
		return opt, errors.New("--quiet conflicts with --verbose")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
