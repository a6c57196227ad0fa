package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	mixedmd "github.com/alnah/go-mixedmd"
	"github.com/alnah/go-mixedmd/internal/config"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Converter turns markdown into a serializable document.
type Converter interface {
	Parse(input string) (*mixedmd.Document, error)
}

// Compile-time interface implementation check.
var _ Converter = (*mixedmd.Parser)(nil)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	// CLI wins over config
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	parser, err := newParser(cfg)
	if err != nil {
		return err
	}

	inputs := resolveInputs(positional, cfg)
	if len(inputs) == 0 {
		return convertStream(env.Stdin, env.Stdout, parser)
	}

	files, err := discoverFiles(inputs, cfg.Output.DefaultDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, strings.Join(inputs, ", "))
	}

	workers := resolvePoolSize(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) with %d worker(s)\n", len(files), workers)
	}

	results := convertBatch(ctx, parser, files, workers, env.Now)

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s) (first: %w)", ErrConversionFailed, failed, len(results), firstError(results))
	}
	return nil
}

// newParser builds a Parser from the post-processing section of cfg.
// An empty rule list keeps the default rules.
func newParser(cfg *config.Config) (*mixedmd.Parser, error) {
	if cfg.PostProcess.Disabled {
		return mixedmd.NewParser(mixedmd.WithoutPostProcess())
	}
	if len(cfg.PostProcess.Rules) == 0 {
		return mixedmd.NewParser()
	}

	rules := make([]mixedmd.Rule, 0, len(cfg.PostProcess.Rules))
	for _, r := range cfg.PostProcess.Rules {
		rules = append(rules, mixedmd.Rule{Selector: r.Selector, Attr: r.Attr, Value: r.Value})
	}
	return mixedmd.NewParser(mixedmd.WithRules(rules...))
}

// resolveInputs returns positional inputs, falling back to input.defaultDir.
// An empty result means stdin.
func resolveInputs(args []string, cfg *config.Config) []string {
	if len(args) > 0 {
		return args
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}
	}
	return nil
}

// convertStream reads all of r and writes the HTML to w. Nothing is written
// unless the whole input converts.
func convertStream(r io.Reader, w io.Writer, conv Converter) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
	}

	doc, err := conv.Parse(string(data))
	if err != nil {
		return err
	}

	if _, err := doc.WriteTo(w); err != nil {
		return err
	}
	return nil
}
