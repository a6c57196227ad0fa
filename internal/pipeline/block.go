package pipeline

// Kind identifies the shape of a scanned block.
type Kind int

const (
	KindHeader Kind = iota + 1
	KindParagraph
	KindRawTag
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindParagraph:
		return "paragraph"
	case KindRawTag:
		return "raw-tag"
	default:
		return "unknown"
	}
}

// Block is one classified unit of source text, in document order.
// Only the fields matching Kind are set.
type Block struct {
	Kind   Kind
	Level  int      // header level, 1-6
	Text   string   // header text as written
	Lines  []string // paragraph lines as written
	HTML   string   // raw tag markup, verbatim
	Line   int      // 1-based line where the block starts
	Offset int      // byte offset where the block starts
}
