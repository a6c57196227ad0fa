// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// IsCI detects a continuous integration environment from well-known variables.
var IsCI = func() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mixedmd/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(slashed(p), "go-mixedmd/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForGrammar returns hints for input the block grammar rejects.
func ForGrammar() string {
	return format("input must be UTF-8 encoded text")
}

// ForMalformedRawHTML returns hints for raw tag blocks that fail to parse.
func ForMalformedRawHTML() string {
	return formatHints([]string{
		"close every element before the next blank line",
		"a line starting with '<' opens a raw HTML block",
	})
}

// ForInvalidRule returns hints for post-process rules that fail to compile.
func ForInvalidRule() string {
	return format("rules need a CSS selector (e.g. \"h2\", \"div > p\") and an attribute name")
}

// ForFixtureMismatch returns hints for fixtures whose output changed.
// In CI, interactive review is not available, so it points to a local run.
func ForFixtureMismatch(dir string) string {
	if IsCI() {
		return format("run 'mixedmd fixtures -i " + dir + "' locally to review and accept changes")
	}
	return format("rerun with -i to review and accept changes")
}

// slashed normalizes Windows separators so path checks work on every OS.
func slashed(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
