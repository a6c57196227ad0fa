package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mixedmd/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands lists the subcommand names.
var commands = []string{"convert", "blocks", "fixtures", "config", "version", "help"}

// runMain dispatches to a subcommand and returns the process exit code.
// Arguments that are not a command name but look like convert input
// (flags, markdown files, paths) run convert.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		if env.StdinTerminal {
			printUsage(env.Stderr)
			return ExitUsage
		}
		args = append(args, "convert")
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		if !looksLikeInput(cmd) {
			fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
		cmd, rest = "convert", args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch cmd {
	case "convert":
		err = runConvert(ctx, rest, env)
	case "blocks":
		err = runBlocks(rest, env)
	case "fixtures":
		err = runFixtures(rest, env)
	case "config":
		err = runConfig(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "mixedmd %s\n", Version)
	case "help":
		return runHelp(rest, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, formatError(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func isCommand(s string) bool {
	for _, c := range commands {
		if s == c {
			return true
		}
	}
	return false
}

// looksLikeInput reports whether a non-command argument is convert input.
func looksLikeInput(s string) bool {
	return strings.HasPrefix(s, "-") || fileutil.IsMarkdownFile(s) || fileutil.IsFilePath(s)
}

// hasVerboseFlag scans raw arguments for -v or --verbose before flag parsing.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
