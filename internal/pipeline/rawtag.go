package pipeline

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rawElement locates an element inside the markup of its raw tag block.
type rawElement struct {
	markup string
	start  int              // offset of the start tag's '<'
	tagEnd int              // just past the start tag
	end    int              // just past the end tag, tagEnd for void elements
	attrs  []html.Attribute // as written
}

// balancedLineEnds returns the offsets of the newlines in markup at which
// every element opened so far is closed and no tag or comment is unfinished.
func balancedLineEnds(markup string) map[int]bool {
	ends := make(map[int]bool)
	z := html.NewTokenizer(strings.NewReader(markup))
	depth, pos := 0, 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return ends
		}
		raw := z.Raw()
		start := pos
		pos += len(raw)

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			if !isVoidElement(atom.Lookup(name)) {
				depth++
			}
		case html.EndTagToken:
			if depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth > 0 {
				continue
			}
			for i, c := range raw {
				if c == '\n' {
					ends[start+i] = true
				}
			}
		case html.CommentToken:
			if !bytes.HasSuffix(raw, []byte(">")) {
				return ends
			}
		}
	}
}

func isVoidElement(a atom.Atom) bool {
	switch a {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Keygen, atom.Link, atom.Meta, atom.Param, atom.Source,
		atom.Track, atom.Wbr:
		return true
	}
	return false
}

// inForeignContent reports whether an svg or math element is open, where
// "<tag/>" closes any element.
func inForeignContent(open []*html.Node) bool {
	for _, n := range open {
		if n.DataAtom == atom.Svg || n.DataAtom == atom.Math {
			return true
		}
	}
	return false
}

func cloneAttrs(attrs []html.Attribute) []html.Attribute {
	return append([]html.Attribute(nil), attrs...)
}

func sameAttrs(a, b []html.Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// startTag renders el's start tag with its current attributes, keeping the
// tag name as written and a trailing "/>".
func startTag(el *html.Node, written string) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(written[1 : 1+len(el.Data)])
	for _, a := range el.Attr {
		b.WriteByte(' ')
		if a.Namespace != "" {
			b.WriteString(a.Namespace)
			b.WriteByte(':')
		}
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteByte('"')
	}
	if strings.HasSuffix(written, "/>") {
		b.WriteString("/>")
	} else {
		b.WriteByte('>')
	}
	return b.String()
}
