package strategy

import (
	"math"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	markdownID           = "MARKDOWN_ONLY"
	markdownFriendlyName = "Markdown"

	markdownBaseConfidence = 0.3
	markdownKindConfidence = 0.15
	markdownMaxConfidence  = 0.9
)

// markdownKinds are the node kinds that plain prose does not produce
var markdownKinds = map[ast.NodeKind]bool{
	ast.KindHeading:         true,
	ast.KindList:            true,
	ast.KindFencedCodeBlock: true,
	ast.KindBlockquote:      true,
	ast.KindThematicBreak:   true,
	ast.KindLink:            true,
	ast.KindImage:           true,
}

// MarkdownStrategy detects text carrying Markdown structure
type MarkdownStrategy struct{}

// ID returns the strategy id
func (s *MarkdownStrategy) ID() string {
	return markdownID
}

// ChildOf returns false, Markdown is a top-level format
func (s *MarkdownStrategy) ChildOf() (string, bool) {
	return "", false
}

// Family returns Markdown
func (s *MarkdownStrategy) Family() Family {
	return Markdown
}

// Parse scores the input by how many distinct structural node kinds it contains
func (s *MarkdownStrategy) Parse(input string) Record {
	kinds := s.structureKinds([]byte(input))
	if kinds == 0 {
		return NewRecord(0.0, markdownFriendlyName, s.Family())
	}

	confidence := math.Min(markdownBaseConfidence+markdownKindConfidence*float64(kinds), markdownMaxConfidence)
	return NewRecord(confidence, markdownFriendlyName, s.Family())
}

// structureKinds walks the AST and counts distinct structural node kinds
func (s *MarkdownStrategy) structureKinds(source []byte) int {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	seen := make(map[ast.NodeKind]bool)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && markdownKinds[n.Kind()] {
			seen[n.Kind()] = true
		}
		return ast.WalkContinue, nil
	})

	return len(seen)
}
