package main

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"

	mixedmd "github.com/alnah/go-mixedmd"
)

// runBlocks prints the blocks the grammar scanned from a file or stdin.
func runBlocks(args []string, env *Environment) error {
	flags, positional, err := parseBlocksFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: blocks takes at most one file", ErrUsage)
	}

	var input []byte
	if len(positional) == 1 {
		input, err = os.ReadFile(positional[0]) // #nosec G304 -- user-provided path
	} else {
		input, err = io.ReadAll(env.Stdin)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	blocks, err := mixedmd.Scan(string(input))
	if err != nil {
		return err
	}

	return printBlocks(env.Stdout, blocks, env.Color && !flags.noColor)
}

// printBlocks pretty-prints blocks. pp's coloring switch is package-global,
// so callers must not print concurrently.
func printBlocks(w io.Writer, blocks []mixedmd.Block, color bool) error {
	pp.ColoringEnabled = color
	if _, err := pp.Fprintln(w, blocks); err != nil {
		return fmt.Errorf("printing blocks: %w", err)
	}
	return nil
}
