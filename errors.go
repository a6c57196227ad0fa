package mixedmd

import "github.com/alnah/go-mixedmd/internal/pipeline"

// Sentinel errors for library operations.
var (
	// ErrGrammar reports input the block scanner cannot match (invalid UTF-8).
	ErrGrammar = pipeline.ErrGrammar
	// ErrMalformedRawHTML reports a raw tag block that is not balanced markup.
	ErrMalformedRawHTML = pipeline.ErrMalformedRawHTML
	// ErrWrite reports a failure writing serialized HTML to the sink.
	ErrWrite = pipeline.ErrWrite
	// ErrInvalidRule reports a post-processing rule that cannot be compiled.
	ErrInvalidRule = pipeline.ErrInvalidRule
)

// SyntaxError locates an ErrGrammar or ErrMalformedRawHTML failure.
// Use errors.As to inspect the line and byte offset.
type SyntaxError = pipeline.SyntaxError
