package pipeline

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Serialize writes every top-level node of t followed by "\n". Header and
// paragraph elements are rendered with their text escaped. Raw elements are
// copied from their source, except start tags whose attributes changed
// after building. The tree is only read, so serializing it again yields
// the same bytes.
func Serialize(t *Tree, w io.Writer) error {
	for c := t.Root.FirstChild; c != nil; c = c.NextSibling {
		if err := t.render(w, c); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	return nil
}

func (t *Tree) render(w io.Writer, n *html.Node) error {
	src, ok := t.raw[n]
	if !ok {
		return html.Render(w, n)
	}

	var b strings.Builder
	pos := src.start
	var walk func(*html.Node)
	walk = func(el *html.Node) {
		if r, ok := t.raw[el]; ok && !sameAttrs(el.Attr, r.attrs) {
			b.WriteString(src.markup[pos:r.start])
			b.WriteString(startTag(el, src.markup[r.start:r.tagEnd]))
			pos = r.tagEnd
		}
		for c := el.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	b.WriteString(src.markup[pos:src.end])

	_, err := io.WriteString(w, b.String())
	return err
}
