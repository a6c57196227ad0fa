package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors for pipeline stages.
var (
	ErrGrammar          = errors.New("input does not match the block grammar")
	ErrMalformedRawHTML = errors.New("malformed raw HTML")
	ErrWrite            = errors.New("failed to write HTML output")
	ErrInvalidRule      = errors.New("invalid post-processing rule")
)

// SyntaxError locates a scanning or raw HTML failure in the source text.
// Err is ErrGrammar or ErrMalformedRawHTML.
type SyntaxError struct {
	Line   int // 1-based
	Offset int // byte offset from the start of the input
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: line %d (offset %d): %s", e.Err, e.Line, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
