package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args     []string
		wantCode int
		want     string
	}{
		{args: nil, wantCode: ExitSuccess, want: "Commands:"},
		{args: []string{"convert"}, wantCode: ExitSuccess, want: "--no-post-process"},
		{args: []string{"blocks"}, wantCode: ExitSuccess, want: "Usage: mixedmd blocks"},
		{args: []string{"fixtures"}, wantCode: ExitSuccess, want: "--interactive"},
		{args: []string{"config"}, wantCode: ExitSuccess, want: "Usage: mixedmd config"},
		{args: []string{"version"}, wantCode: ExitSuccess, want: "Usage: mixedmd version"},
		{args: []string{"help"}, wantCode: ExitSuccess, want: "Usage: mixedmd help"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := newTestEnv("")
			if code := runHelp(tt.args, env); code != tt.wantCode {
				t.Errorf("runHelp(%v) = %d, want %d", tt.args, code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("output should contain %q, got:\n%s", tt.want, stdout.String())
			}
		})
	}
}

func TestRunHelp_UnknownCommand(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := newTestEnv("")
	if code := runHelp([]string{"nope"}, env); code != ExitUsage {
		t.Errorf("runHelp() = %d, want %d", code, ExitUsage)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Unknown command: nope") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestUsageListsEveryCommand(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	for _, c := range commands {
		if !strings.Contains(buf.String(), "  "+c+" ") {
			t.Errorf("usage does not list %q", c)
		}
	}
}
