package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mixedmd <command> [flags] [args]")
	fmt.Fprintln(w, "       mixedmd [flags] < input.md > output.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown to HTML (default)")
	fmt.Fprintln(w, "  blocks     Show the blocks scanned from a document")
	fmt.Fprintln(w, "  fixtures   Check golden .md/.html fixture pairs")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mixedmd help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mixedmd convert [input...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML. Without input (and without input.defaultDir")
	fmt.Fprintln(w, "in config), reads stdin and writes stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown files or directories")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Post-processing:")
	fmt.Fprintln(w, "      --rule <s>            Rewrite rule SELECTOR@ATTR=VALUE (repeatable,")
	fmt.Fprintln(w, "                            replaces configured rules)")
	fmt.Fprintln(w, "                            Default: h2@class=subtitle")
	fmt.Fprintln(w, "      --no-post-process     Skip attribute rewrites")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing and sizes")
}

// printBlocksUsage prints usage for the blocks command.
func printBlocksUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mixedmd blocks [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the header, paragraph and raw tag blocks scanned from a file or stdin.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --no-color            Disable colored output")
}

// printFixturesUsage prints usage for the fixtures command.
func printFixturesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mixedmd fixtures [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every <name>.md in dir (default: testdata) and compare it with")
	fmt.Fprintln(w, "<name>.html. A missing .html file counts as empty.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --interactive         Show each diff and ask to accept it")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Omit the summary line")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mixedmd config [name|path]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w, "Names are searched as ./<name>.yaml|yml, then in the user config")
	fmt.Fprintln(w, "directory under go-mixedmd/.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "blocks":
		printBlocksUsage(env.Stdout)
	case "fixtures":
		printFixturesUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mixedmd version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mixedmd help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
