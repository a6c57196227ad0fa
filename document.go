package mixedmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alnah/go-mixedmd/internal/pipeline"
)

// Compile-time interface implementation check.
var _ io.WriterTo = (*Document)(nil)

// Document is the result of a successful parse: the built element tree and
// the blocks it was built from. It is read-only after parsing.
type Document struct {
	tree   *pipeline.Tree
	blocks []Block
}

// WriteTo writes every top-level node as HTML followed by a newline.
// A write failure wraps ErrWrite and leaves the Document intact,
// so callers may retry with another writer.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	out, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(out)
	if err != nil {
		return int64(n), fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return int64(n), nil
}

// Bytes returns the serialized HTML.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := pipeline.Serialize(d.tree, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the serialized HTML, or "" if serialization fails.
func (d *Document) String() string {
	out, err := d.Bytes()
	if err != nil {
		return ""
	}
	return string(out)
}

// Len returns the number of top-level nodes.
func (d *Document) Len() int {
	n := 0
	for c := d.tree.Root.FirstChild; c != nil; c = c.NextSibling {
		n++
	}
	return n
}

// Blocks returns a copy of the blocks the Document was built from.
func (d *Document) Blocks() []Block {
	return append([]Block(nil), d.blocks...)
}
