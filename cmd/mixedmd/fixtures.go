package main

import (
	"fmt"

	"github.com/alnah/go-mixedmd/internal/fixture"
	"github.com/alnah/go-mixedmd/internal/hints"
)

// defaultFixtureDir is used when no directory argument is given.
const defaultFixtureDir = "testdata"

// runFixtures renders every <name>.md fixture in a directory and compares
// it with <name>.html. With -i each mismatch is offered for acceptance.
func runFixtures(args []string, env *Environment) error {
	flags, positional, err := parseFixturesFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: fixtures takes at most one directory", ErrUsage)
	}
	dir := defaultFixtureDir
	if len(positional) == 1 {
		dir = positional[0]
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	parser, err := newParser(cfg)
	if err != nil {
		return err
	}

	cases, err := fixture.Discover(dir)
	if err != nil {
		return err
	}

	results, err := fixture.RunAll(cases, func(markdown string) ([]byte, error) {
		doc, err := parser.Parse(markdown)
		if err != nil {
			return nil, err
		}
		return doc.Bytes()
	})
	if err != nil {
		return err
	}

	var confirm fixture.Confirmer
	if flags.interactive {
		confirm = env.Confirmer
	}

	summary, err := fixture.Review(env.Stdout, results, confirm)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%d passed, %d accepted, %d rejected\n",
			summary.Passed, summary.Accepted, summary.Rejected)
	}

	if summary.Failed() {
		hint := ""
		if !flags.interactive {
			hint = hints.ForFixtureMismatch(dir)
		}
		return fmt.Errorf("%w: %d of %d%s", ErrFixturesFailed, summary.Rejected, len(results), hint)
	}
	return nil
}
