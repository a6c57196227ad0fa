// Package pipeline implements the partial mixed markdown to HTML pipeline.
//
// The stages run strictly forward, each consuming the output of the previous one:
//   - Block scanning (headers, paragraphs, raw tag blocks) over whole lines
//   - Text normalization (whitespace collapse and trim)
//   - DOM building on golang.org/x/net/html nodes
//   - Post-processing rewrite rules (h2 subtitle class by default)
//   - Serialization of the top-level nodes, one per line
//
// Every stage is a pure function of its input. Nothing here keeps state
// between calls, so independent documents can be processed concurrently.
package pipeline
