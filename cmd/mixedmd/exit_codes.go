package main

import (
	"errors"
	"os"

	mixedmd "github.com/alnah/go-mixedmd"
	"github.com/alnah/go-mixedmd/internal/config"
	"github.com/alnah/go-mixedmd/internal/fixture"
)

// Exit codes for mixedmd CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error, fixture mismatches
	ExitUsage   = 2 // Invalid flags, config, or rules
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitParse   = 4 // Input rejected by the grammar or malformed raw HTML
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Parse errors (exit 4)
	if errors.Is(err, mixedmd.ErrGrammar) ||
		errors.Is(err, mixedmd.ErrMalformedRawHTML) {
		return ExitParse
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, mixedmd.ErrWrite) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, fixture.ErrNoFixtures) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrInvalidRule) ||
		errors.Is(err, mixedmd.ErrInvalidRule) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidRuleFlag) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
