// Package mixedmd converts partial mixed markdown (headers, paragraphs and
// raw HTML tags) into an HTML fragment.
//
// # Quick Start
//
// Parse a document and write its HTML:
//
//	doc, err := mixedmd.Parse("Title\n=====\n\nHello <world>\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := doc.WriteTo(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Output is one top-level element per line:
//
//	<h1>Title</h1>
//	<p>Hello &lt;world&gt;</p>
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Block scanning: ATX and setext headers, paragraphs, raw tag blocks
//  2. Whitespace normalization of header and paragraph text
//  3. DOM building on golang.org/x/net/html nodes (raw tags nested as written)
//  4. Post-processing: every h2 gets class="subtitle"
//  5. Serialization of each top-level node followed by a newline; raw
//     tags are copied from the source
//
// ParseWithoutPostProcess stops after stage 3.
//
// # Rewrite Rules
//
// Use a Parser to replace the default post-processing rule:
//
//	p, err := mixedmd.NewParser(
//	    mixedmd.WithRules(mixedmd.Rule{Selector: "h2", Attr: "class", Value: "subtitle"},
//	        mixedmd.Rule{Selector: "h1", Attr: "id", Value: "top"}),
//	)
//
// # Errors
//
// Parse fails with ErrGrammar on input it cannot scan (invalid UTF-8) and with
// ErrMalformedRawHTML when a raw tag block is not balanced markup. Both are
// reported through *SyntaxError with the line and byte offset. Writing fails
// with ErrWrite; the Document stays usable and can be written again.
package mixedmd
