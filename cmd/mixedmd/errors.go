package main

import (
	"errors"
	"strings"

	mixedmd "github.com/alnah/go-mixedmd"
	"github.com/alnah/go-mixedmd/internal/config"
	"github.com/alnah/go-mixedmd/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrInvalidRuleFlag  = errors.New("invalid --rule value")
	ErrConversionFailed = errors.New("conversion failed")
	ErrFixturesFailed   = errors.New("fixtures differ from expected output")
)

// formatError renders err for the terminal, followed by an actionable hint
// when one applies.
func formatError(err error) string {
	msg := err.Error()

	var hint string
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		hint = hints.ForConfigNotFound(triedPaths(msg))
	case errors.Is(err, config.ErrInvalidRule), errors.Is(err, mixedmd.ErrInvalidRule),
		errors.Is(err, ErrInvalidRuleFlag):
		hint = hints.ForInvalidRule()
	case errors.Is(err, mixedmd.ErrMalformedRawHTML):
		hint = hints.ForMalformedRawHTML()
	case errors.Is(err, mixedmd.ErrGrammar):
		hint = hints.ForGrammar()
	case errors.Is(err, ErrWriteHTML):
		hint = hints.ForOutputDirectory()
	}

	return msg + hint
}

// triedPaths extracts the searched locations from a config-not-found message.
func triedPaths(msg string) []string {
	_, list, ok := strings.Cut(msg, "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
