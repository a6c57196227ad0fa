package mixedmd

import "github.com/alnah/go-mixedmd/internal/pipeline"

// Block is one classified unit of source text, as returned by Scan.
type Block = pipeline.Block

// Kind identifies the shape of a Block.
type Kind = pipeline.Kind

// Block kinds.
const (
	KindHeader    = pipeline.KindHeader
	KindParagraph = pipeline.KindParagraph
	KindRawTag    = pipeline.KindRawTag
)

// Rule sets Attr to Value on every element matched by the CSS Selector
// during post-processing. An existing value is overwritten.
type Rule = pipeline.Rule

// DefaultRules returns the stock post-processing rule set:
// every h2 gets class="subtitle".
func DefaultRules() []Rule {
	return pipeline.DefaultRules()
}

// ValidateRule reports whether r would be accepted by WithRules.
func ValidateRule(r Rule) error {
	_, err := pipeline.CompileRule(r)
	return err
}

// Scan runs only the block grammar and returns the blocks in document order.
func Scan(input string) ([]Block, error) {
	return pipeline.Scan(input)
}
