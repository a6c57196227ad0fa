package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-mixedmd/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.md")
	if err := os.WriteFile(testFile, []byte("# x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file returns true", path: testFile, want: true},
		{name: "directory returns false", path: testDir, want: false},
		{name: "nonexistent path returns false", path: filepath.Join(tempDir, "nonexistent"), want: false},
		{name: "empty path returns false", path: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.FileExists(tt.path)
			if got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple name returns false", input: "team", want: false},
		{name: "relative path with dot-slash returns true", input: "./mixedmd.yaml", want: true},
		{name: "parent path returns true", input: "../shared/mixedmd.yaml", want: true},
		{name: "absolute Unix path returns true", input: "/etc/mixedmd.yaml", want: true},
		{name: "Windows path with backslash returns true", input: "C:\\config\\mixedmd.yaml", want: true},
		{name: "name with dots but no slash returns false", input: "name.with.dots", want: false},
		{name: "empty string returns false", input: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsFilePath(tt.input)
			if got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsMarkdownFile - Source extension detection
// ---------------------------------------------------------------------------

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"doc.md", true},
		{"doc.MD", true},
		{"notes/doc.markdown", true},
		{"doc.html", false},
		{"doc", false},
		{"md", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsMarkdownFile(tt.path); got != tt.want {
				t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"doc.md", "doc.html"},
		{"a/b/doc.markdown", "a/b/doc.html"},
		{"noext", "noext.html"},
		{"dir.v2/doc.md", "dir.v2/doc.html"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.ReplaceExt(tt.path, ".html"); got != tt.want {
				t.Errorf("ReplaceExt(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
