// Package document verifies the repository's teaching document. It parses
// the bundled README and checks its documentation-quality properties: one
// heading per principle in acronym order, each definition stated exactly
// once, and code blocks that are real Go and show the promised fixtures.
//
// The package checks this repository's document only. It is not a linter or
// a general rule checker for arbitrary code.
package document

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one markdown heading in document order.
type Heading struct {
	Level int
	Text  string
}

// CodeBlock is one fenced code block with its info-string language.
type CodeBlock struct {
	Language string
	Code     string
}

// Section is a heading together with everything under it up to the next
// heading of the same or higher level.
type Section struct {
	Heading Heading
	Prose   string
	Blocks  []CodeBlock
}

// Document is the parsed markdown the checks run over.
type Document struct {
	// Source is the raw markdown.
	Source []byte
	// Headings in document order.
	Headings []Heading
	// Sections keyed by every H2-and-deeper heading, in document order.
	Sections []Section
	// Intro is the prose between the title and the first H2.
	Intro string
}

// Parse parses markdown into a Document. Malformed markdown does not fail
// the parse; goldmark degrades gracefully and the checks judge the result.
func Parse(src []byte) (*Document, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	doc := &Document{Source: src}

	var (
		current   *Section
		introDone bool
		intro     strings.Builder
	)
	flush := func() {
		if current != nil {
			doc.Sections = append(doc.Sections, *current)
			current = nil
		}
	}

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			h := Heading{Level: n.Level, Text: nodeText(n, src)}
			doc.Headings = append(doc.Headings, h)
			if n.Level >= 2 {
				flush()
				introDone = true
				current = &Section{Heading: h}
			}
		case *ast.FencedCodeBlock:
			block := CodeBlock{
				Language: string(n.Language(src)),
				Code:     linesText(n, src),
			}
			if current != nil {
				current.Blocks = append(current.Blocks, block)
			}
		default:
			prose := nodeText(node, src)
			switch {
			case current != nil:
				current.Prose += prose + "\n"
			case !introDone:
				intro.WriteString(prose)
				intro.WriteString("\n")
			}
		}
	}
	flush()
	doc.Intro = intro.String()

	return doc, nil
}

// Title returns the single H1 text, or "" when the document has none.
func (d *Document) Title() string {
	for _, h := range d.Headings {
		if h.Level == 1 {
			return h.Text
		}
	}

	return ""
}

// SectionContaining returns the first section whose heading contains needle.
func (d *Document) SectionContaining(needle string) (Section, bool) {
	for _, s := range d.Sections {
		if strings.Contains(s.Heading.Text, needle) {
			return s, true
		}
	}

	return Section{}, false
}

func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := node.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte('\n')
			}
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(buf.String())
}

func linesText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}

	return buf.String()
}
