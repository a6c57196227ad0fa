// Package fixture runs golden-file checks: each <name>.md is rendered and
// compared byte for byte with <name>.html, and mismatches can be reviewed
// and accepted interactively.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Sentinel errors for fixture operations.
var (
	ErrNoFixtures = errors.New("no fixtures found")
	ErrRender     = errors.New("fixture rendering failed")
)

// filePermissions for accepted expected files: rw-r--r--.
const filePermissions = 0o644

// Case is one fixture: a markdown input and its expected HTML.
type Case struct {
	Name         string
	MarkdownPath string
	HTMLPath     string
}

// RenderFunc converts fixture markdown into the bytes under test.
type RenderFunc func(markdown string) ([]byte, error)

// Result is the outcome of running one Case.
type Result struct {
	Case     Case
	Expected []byte // empty when the .html file does not exist
	Actual   []byte
	Diff     string // empty when Expected == Actual
}

// Passed reports whether the actual output matched the expected file.
func (r *Result) Passed() bool {
	return bytes.Equal(r.Expected, r.Actual)
}

// Accept overwrites the expected file with the actual output.
func (r *Result) Accept() error {
	// #nosec G306 -- fixtures are meant to be readable
	if err := os.WriteFile(r.Case.HTMLPath, r.Actual, filePermissions); err != nil {
		return fmt.Errorf("accepting %s: %w", r.Case.Name, err)
	}
	r.Expected = append([]byte(nil), r.Actual...)
	r.Diff = ""
	return nil
}

// Discover lists the *.md fixtures of dir, sorted by name.
func Discover(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading fixture directory: %w", err)
	}

	var cases []Case
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".md")
		cases = append(cases, Case{
			Name:         name,
			MarkdownPath: filepath.Join(dir, name+".md"),
			HTMLPath:     filepath.Join(dir, name+".html"),
		})
	}

	if len(cases) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFixtures, dir)
	}

	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases, nil
}

// Run renders c and compares the output with its expected file.
// A missing expected file counts as empty.
func Run(c Case, render RenderFunc) (*Result, error) {
	markdown, err := os.ReadFile(c.MarkdownPath) // #nosec G304 -- discovered path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.MarkdownPath, err)
	}

	expected, err := os.ReadFile(c.HTMLPath) // #nosec G304 -- discovered path
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", c.HTMLPath, err)
	}

	actual, err := render(string(markdown))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, c.Name, err)
	}

	result := &Result{Case: c, Expected: expected, Actual: actual}
	if !result.Passed() {
		result.Diff = cmp.Diff(string(expected), string(actual))
	}
	return result, nil
}

// RunAll runs every case, stopping at the first rendering or I/O error.
func RunAll(cases []Case, render RenderFunc) ([]*Result, error) {
	results := make([]*Result, 0, len(cases))
	for _, c := range cases {
		r, err := Run(c, render)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}
