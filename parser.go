package mixedmd

import "github.com/alnah/go-mixedmd/internal/pipeline"

// Parser runs the conversion pipeline with a fixed set of rewrite rules.
// A Parser holds only read-only compiled rules and is safe for concurrent use.
type Parser struct {
	rules         []Rule
	skipPost      bool
	postProcessor *pipeline.PostProcessor
}

// Option configures a Parser.
type Option func(*Parser)

// WithRules replaces the default post-processing rules.
// Passing no rules leaves the tree untouched after building.
func WithRules(rules ...Rule) Option {
	return func(p *Parser) {
		p.rules = append([]Rule(nil), rules...)
	}
}

// WithoutPostProcess disables the post-processing stage.
func WithoutPostProcess() Option {
	return func(p *Parser) {
		p.skipPost = true
	}
}

// NewParser creates a Parser using DefaultRules unless overridden.
// Returns ErrInvalidRule if a rule selector cannot be compiled.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{rules: DefaultRules()}

	for _, opt := range opts {
		opt(p)
	}

	if !p.skipPost {
		pp, err := pipeline.NewPostProcessor(p.rules)
		if err != nil {
			return nil, err
		}
		p.postProcessor = pp
	}

	return p, nil
}

// Parse converts input into a Document. On failure no Document is returned.
func (p *Parser) Parse(input string) (*Document, error) {
	blocks, err := pipeline.Scan(input)
	if err != nil {
		return nil, err
	}

	tree, err := pipeline.Build(blocks)
	if err != nil {
		return nil, err
	}

	if p.postProcessor != nil {
		p.postProcessor.Apply(tree.Root)
	}

	return &Document{tree: tree, blocks: blocks}, nil
}

// Rules returns the post-processing rules this Parser applies.
// The result is empty when post-processing is disabled.
func (p *Parser) Rules() []Rule {
	if p.postProcessor == nil {
		return nil
	}
	return p.postProcessor.Rules()
}

// Parse converts input with the full pipeline, including post-processing.
func Parse(input string) (*Document, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}

// ParseWithoutPostProcess converts input but stops after DOM building.
// Useful to compare output or timings against Parse.
func ParseWithoutPostProcess(input string) (*Document, error) {
	p, err := NewParser(WithoutPostProcess())
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}
