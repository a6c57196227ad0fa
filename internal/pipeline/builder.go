package pipeline

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tree is a built document. Elements that came from raw tag blocks keep
// their source so they serialize as written.
type Tree struct {
	Root *html.Node
	raw  map[*html.Node]*rawElement
}

// Build renders blocks into a new document tree. Header and paragraph text
// is stored normalized and unescaped; Serialize owns escaping.
// Raw tag blocks contribute their top-level elements, nested as written.
func Build(blocks []Block) (*Tree, error) {
	t := &Tree{
		Root: &html.Node{Type: html.DocumentNode},
		raw:  make(map[*html.Node]*rawElement),
	}

	for _, b := range blocks {
		switch b.Kind {
		case KindHeader:
			if b.Level < 1 || b.Level > maxHeaderLevel {
				return nil, fmt.Errorf("%w: header level %d at line %d", ErrGrammar, b.Level, b.Line)
			}
			t.Root.AppendChild(textElement(headerAtom(b.Level), Normalize(b.Text)))
		case KindParagraph:
			t.Root.AppendChild(textElement(atom.P, JoinLines(b.Lines)))
		case KindRawTag:
			nodes, err := t.parseRawTag(b)
			if err != nil {
				return nil, err
			}
			for _, n := range nodes {
				t.Root.AppendChild(n)
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %s block at line %d", ErrGrammar, b.Kind, b.Line)
		}
	}

	return t, nil
}

func headerAtom(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

// textElement returns <a>text</a>.
func textElement(a atom.Atom, text string) *html.Node {
	el := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return el
}

// parseRawTag tokenizes a raw tag block into elements nested exactly as the
// markup nests them and returns the top-level ones. Text and comments
// between top-level elements are dropped. Truncated tags, stray or
// misnested end tags, unclosed elements and "<div/>" style self-closing
// non-void elements are rejected.
func (t *Tree) parseRawTag(b Block) ([]*html.Node, error) {
	malformed := func(format string, args ...any) error {
		return &SyntaxError{Line: b.Line, Offset: b.Offset, Msg: fmt.Sprintf(format, args...), Err: ErrMalformedRawHTML}
	}

	z := html.NewTokenizer(strings.NewReader(b.HTML))
	var top, open []*html.Node
	pos := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, malformed("%v", err)
			}
			break
		}
		start := pos
		pos += len(z.Raw())
		tok := z.Token()

		var parent *html.Node
		if len(open) > 0 {
			parent = open[len(open)-1]
		}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			void := isVoidElement(tok.DataAtom)
			if tt == html.SelfClosingTagToken && !void && !inForeignContent(open) {
				return nil, malformed("self-closing non-void element <%s/>", tok.Data)
			}
			el := &html.Node{Type: html.ElementNode, Data: tok.Data, DataAtom: tok.DataAtom, Attr: tok.Attr}
			t.raw[el] = &rawElement{markup: b.HTML, start: start, tagEnd: pos, end: pos, attrs: cloneAttrs(tok.Attr)}
			if parent == nil {
				top = append(top, el)
			} else {
				parent.AppendChild(el)
			}
			if tt == html.StartTagToken && !void {
				open = append(open, el)
			}
		case html.EndTagToken:
			if parent == nil || parent.Data != tok.Data {
				return nil, malformed("unexpected end tag </%s>", tok.Data)
			}
			open = open[:len(open)-1]
			t.raw[parent].end = pos
		case html.TextToken:
			if parent != nil {
				parent.AppendChild(&html.Node{Type: html.TextNode, Data: tok.Data})
			}
		case html.CommentToken:
			if parent != nil {
				parent.AppendChild(&html.Node{Type: html.CommentNode, Data: tok.Data})
			}
		}
	}

	if pos < len(b.HTML) {
		return nil, malformed("unterminated tag %q", truncate(b.HTML[pos:], 20))
	}
	if len(open) > 0 {
		return nil, malformed("unclosed tag <%s>", open[len(open)-1].Data)
	}
	return top, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
