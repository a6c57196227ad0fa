package pipeline

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Rule sets Attr to Value on every element matched by the CSS Selector.
// An existing value is overwritten.
type Rule struct {
	Selector string
	Attr     string
	Value    string
}

// DefaultRules returns the stock rewrite: every h2 becomes a subtitle.
func DefaultRules() []Rule {
	return []Rule{{Selector: "h2", Attr: "class", Value: "subtitle"}}
}

// PostProcessor applies compiled rewrite rules to a built tree.
// It holds no per-document state and is safe for concurrent use.
type PostProcessor struct {
	rules    []Rule
	matchers []goquery.Matcher
}

// NewPostProcessor compiles rules, failing with ErrInvalidRule on an empty
// attribute name or a selector cascadia cannot parse.
func NewPostProcessor(rules []Rule) (*PostProcessor, error) {
	p := &PostProcessor{
		rules:    make([]Rule, 0, len(rules)),
		matchers: make([]goquery.Matcher, 0, len(rules)),
	}

	for i, r := range rules {
		m, err := CompileRule(r)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		p.rules = append(p.rules, r)
		p.matchers = append(p.matchers, m)
	}

	return p, nil
}

// CompileRule validates r and returns its selector as a goquery matcher.
func CompileRule(r Rule) (goquery.Matcher, error) {
	if r.Attr == "" {
		return nil, fmt.Errorf("%w: empty attribute name", ErrInvalidRule)
	}
	if strings.TrimSpace(r.Selector) == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrInvalidRule)
	}
	sel, err := cascadia.Compile(r.Selector)
	if err != nil {
		return nil, fmt.Errorf("%w: selector %q: %v", ErrInvalidRule, r.Selector, err)
	}
	return sel, nil
}

// Apply mutates root in place, rule by rule. Applying twice is a no-op.
func (p *PostProcessor) Apply(root *html.Node) {
	doc := goquery.NewDocumentFromNode(root)
	for i, m := range p.matchers {
		doc.FindMatcher(m).SetAttr(p.rules[i].Attr, p.rules[i].Value)
	}
}

// Rules returns a copy of the compiled rules.
func (p *PostProcessor) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}
