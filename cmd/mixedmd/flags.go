package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mixedmd/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// postProcessFlags holds attribute rewrite flags.
type postProcessFlags struct {
	disabled bool
	rules    []string // SELECTOR@ATTR=VALUE
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common      commonFlags
	output      string
	workers     int
	postProcess postProcessFlags
}

// blocksFlags holds flags for the blocks command.
type blocksFlags struct {
	noColor bool
}

// fixturesFlags holds flags for the fixtures command.
type fixturesFlags struct {
	common      commonFlags
	interactive bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPostProcessFlags adds post-processing flags to a FlagSet.
func addPostProcessFlags(fs *flag.FlagSet, f *postProcessFlags) {
	fs.BoolVar(&f.disabled, "no-post-process", false, "skip attribute rewrites")
	fs.StringArrayVar(&f.rules, "rule", nil, "rewrite rule SELECTOR@ATTR=VALUE (repeatable)")
}

// newFlagSet creates a FlagSet that reports errors to w instead of exiting.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args, wrapping failures so they map to ExitUsage.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", stderr, printConvertUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addPostProcessFlags(fs, &f.postProcess)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBlocksFlags parses blocks command flags and returns positional args.
func parseBlocksFlags(args []string, stderr io.Writer) (*blocksFlags, []string, error) {
	f := &blocksFlags{}
	fs := newFlagSet("blocks", stderr, printBlocksUsage)

	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseFixturesFlags parses fixtures command flags and returns positional args.
func parseFixturesFlags(args []string, stderr io.Writer) (*fixturesFlags, []string, error) {
	f := &fixturesFlags{}
	fs := newFlagSet("fixtures", stderr, printFixturesUsage)

	fs.BoolVarP(&f.interactive, "interactive", "i", false, "review and accept mismatches")
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseRuleFlag parses SELECTOR@ATTR=VALUE. The selector ends at the last
// '@' that is followed by an attribute name and '=', so values may contain '@'.
func parseRuleFlag(s string) (config.RuleConfig, error) {
	for i := strings.LastIndex(s, "@"); i > 0; i = strings.LastIndex(s[:i], "@") {
		attr, value, ok := strings.Cut(s[i+1:], "=")
		if ok && attr != "" && !strings.ContainsAny(attr, "@ \t") {
			return config.RuleConfig{Selector: s[:i], Attr: attr, Value: value}, nil
		}
	}
	return config.RuleConfig{}, fmt.Errorf("%w: %q (want SELECTOR@ATTR=VALUE)", ErrInvalidRuleFlag, s)
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Rules given with --rule replace the configured rule list.
func mergeFlags(f *convertFlags, cfg *config.Config) error {
	if f.output != "" {
		cfg.Output.DefaultDir = f.output
	}
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
	if f.postProcess.disabled {
		cfg.PostProcess.Disabled = true
	}
	if len(f.postProcess.rules) > 0 {
		rules := make([]config.RuleConfig, 0, len(f.postProcess.rules))
		for _, s := range f.postProcess.rules {
			r, err := parseRuleFlag(s)
			if err != nil {
				return err
			}
			rules = append(rules, r)
		}
		cfg.PostProcess.Rules = rules
	}
	return nil
}
