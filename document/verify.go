package document

import (
	"fmt"
	"go/parser"
	"go/token"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goprinciples/solid/curriculum"
)

// CheckFunc is one pure check over a parsed document and the curriculum.
type CheckFunc func(doc *Document, c *curriculum.Curriculum) Finding

// Check is a named check.
type Check struct {
	Name string
	Run  CheckFunc
}

// Finding is the result of one check.
type Finding struct {
	Check   string   `json:"check"`
	Passed  bool     `json:"passed"`
	Summary string   `json:"summary"`
	Details []string `json:"details,omitempty"`
}

// Verifier runs a configured set of checks.
type Verifier struct {
	checks []Check
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithCheck appends a custom check to the standard set.
func WithCheck(c Check) VerifierOption {
	return func(v *Verifier) {
		v.checks = append(v.checks, c)
	}
}

// WithOnly restricts the run to the named checks, keeping their order.
func WithOnly(names ...string) VerifierOption {
	return func(v *Verifier) {
		keep := make(map[string]bool, len(names))
		for _, n := range names {
			keep[n] = true
		}
		filtered := make([]Check, 0, len(v.checks))
		for _, c := range v.checks {
			if keep[c.Name] {
				filtered = append(filtered, c)
			}
		}
		v.checks = filtered
	}
}

// NewVerifier creates a Verifier with the standard checks.
func NewVerifier(opts ...VerifierOption) *Verifier {
	v := &Verifier{checks: StandardChecks()}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Verify runs every configured check. Checks never panic on malformed input;
// a property that cannot be evaluated is a failed finding.
func (v *Verifier) Verify(doc *Document, c *curriculum.Curriculum) Report {
	findings := make([]Finding, 0, len(v.checks))
	for _, check := range v.checks {
		findings = append(findings, check.Run(doc, c))
	}

	return NewReport(findings)
}

// StandardChecks returns the document-quality checks in their standard order.
func StandardChecks() []Check {
	return []Check{
		{Name: "single-title", Run: checkSingleTitle},
		{Name: "intro-acronym", Run: checkIntroAcronym},
		{Name: "principle-headings", Run: checkPrincipleHeadings},
		{Name: "definitions-once", Run: checkDefinitionsOnce},
		{Name: "go-block-presence", Run: checkGoBlockPresence},
		{Name: "go-blocks-parse", Run: checkGoBlocksParse},
		{Name: "fixtures-shown", Run: checkFixturesShown},
	}
}

// checkSingleTitle: the document has exactly one H1.
func checkSingleTitle(doc *Document, _ *curriculum.Curriculum) Finding {
	var titles []string
	for _, h := range doc.Headings {
		if h.Level == 1 {
			titles = append(titles, h.Text)
		}
	}

	f := Finding{Check: "single-title"}
	switch len(titles) {
	case 1:
		f.Passed = true
		f.Summary = fmt.Sprintf("one title: %q", titles[0])
	case 0:
		f.Summary = "document has no title heading"
	default:
		f.Summary = fmt.Sprintf("document has %d title headings", len(titles))
		f.Details = titles
	}

	return f
}

// checkIntroAcronym: the introduction enumerates the five principle names in
// acronym order before any principle section begins.
func checkIntroAcronym(doc *Document, c *curriculum.Curriculum) Finding {
	f := Finding{Check: "intro-acronym"}

	rest := doc.Intro
	for _, p := range c.All() {
		i := strings.Index(rest, p.Name)
		if i < 0 {
			f.Summary = fmt.Sprintf("introduction does not enumerate %q in order", p.Name)
			return f
		}
		rest = rest[i+len(p.Name):]
	}

	f.Passed = true
	f.Summary = "introduction enumerates all five principles in acronym order"

	return f
}

// checkPrincipleHeadings: exactly one heading per principle, in acronym order.
func checkPrincipleHeadings(doc *Document, c *curriculum.Curriculum) Finding {
	f := Finding{Check: "principle-headings"}

	lastIdx := -1
	for _, p := range c.All() {
		var indices []int
		for i, s := range doc.Sections {
			if strings.Contains(s.Heading.Text, p.Name) {
				indices = append(indices, i)
			}
		}
		switch len(indices) {
		case 0:
			f.Summary = fmt.Sprintf("no heading for %q", p.Name)
			return f
		case 1:
		default:
			f.Summary = fmt.Sprintf("%d headings for %q, want exactly one", len(indices), p.Name)
			return f
		}
		if indices[0] <= lastIdx {
			f.Summary = fmt.Sprintf("heading for %q out of acronym order", p.Name)
			return f
		}
		lastIdx = indices[0]
	}

	f.Passed = true
	f.Summary = "one heading per principle, in acronym order"

	return f
}

// checkDefinitionsOnce: each principle's definition sentence appears exactly
// once in the whole document. Whitespace is normalized on both sides so hard
// wrapping in the markdown does not hide a match.
func checkDefinitionsOnce(doc *Document, c *curriculum.Curriculum) Finding {
	f := Finding{Check: "definitions-once"}

	src := normalizeSpace(string(doc.Source))
	for _, p := range c.All() {
		switch n := strings.Count(src, normalizeSpace(p.Definition)); n {
		case 1:
		case 0:
			f.Summary = fmt.Sprintf("definition of %q missing from document", p.Name)
			return f
		default:
			f.Summary = fmt.Sprintf("definition of %q appears %d times, want once", p.Name, n)
			return f
		}
	}

	f.Passed = true
	f.Summary = "each definition appears exactly once"

	return f
}

// checkGoBlockPresence: every principle section contains at least one fenced
// go block.
func checkGoBlockPresence(doc *Document, c *curriculum.Curriculum) Finding {
	f := Finding{Check: "go-block-presence"}

	for _, p := range c.All() {
		section, ok := doc.SectionContaining(p.Name)
		if !ok {
			f.Summary = fmt.Sprintf("no section for %q", p.Name)
			return f
		}
		var goBlocks int
		for _, b := range section.Blocks {
			if b.Language == "go" {
				goBlocks++
			}
		}
		if goBlocks == 0 {
			f.Summary = fmt.Sprintf("section %q has no fenced go block", section.Heading.Text)
			return f
		}
	}

	f.Passed = true
	f.Summary = "every principle section has a fenced go block"

	return f
}

// checkGoBlocksParse: every fenced go block in the document parses as Go.
// Fragments are wrapped in a synthetic file or function before parsing.
func checkGoBlocksParse(doc *Document, _ *curriculum.Curriculum) Finding {
	f := Finding{Check: "go-blocks-parse"}

	var bad []string
	total := 0
	for _, s := range doc.Sections {
		for i, b := range s.Blocks {
			if b.Language != "go" {
				continue
			}
			total++
			if err := parseGoSnippet(b.Code); err != nil {
				bad = append(bad, fmt.Sprintf("%s block %d: %v", s.Heading.Text, i+1, err))
			}
		}
	}

	if len(bad) > 0 {
		f.Summary = fmt.Sprintf("%d of %d go blocks do not parse", len(bad), total)
		f.Details = bad
		return f
	}

	f.Passed = true
	f.Summary = fmt.Sprintf("all %d go blocks parse", total)

	return f
}

// checkFixturesShown: every fixture name the manifest promises for a
// principle appears in that principle's code.
func checkFixturesShown(doc *Document, c *curriculum.Curriculum) Finding {
	f := Finding{Check: "fixtures-shown"}

	var missing []string
	for _, p := range c.All() {
		section, ok := doc.SectionContaining(p.Name)
		if !ok {
			f.Summary = fmt.Sprintf("no section for %q", p.Name)
			return f
		}
		var code strings.Builder
		for _, b := range section.Blocks {
			code.WriteString(b.Code)
		}
		for _, fixture := range p.Fixtures {
			if !strings.Contains(code.String(), fixture) {
				missing = append(missing, fmt.Sprintf("%s: %s", p.Slug, fixture))
			}
		}
	}

	if len(missing) > 0 {
		f.Summary = fmt.Sprintf("%d promised fixtures missing from code", len(missing))
		f.Details = missing
		return f
	}

	f.Passed = true
	f.Summary = "every promised fixture appears in its section's code"

	return f
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseGoSnippet parses src as a Go file, then as a file body, then as a
// function body, accepting the first form that parses.
func parseGoSnippet(src string) error {
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "snippet.go", src, 0); err == nil {
		return nil
	}
	if _, err := parser.ParseFile(fset, "snippet.go", "package snippet\n\n"+src, 0); err == nil {
		return nil
	}
	_, err := parser.ParseFile(fset, "snippet.go", "package snippet\n\nfunc _() {\n"+src+"\n}", 0)

	return err
}

// Report is the outcome of one verification run.
type Report struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Findings  []Finding `json:"findings"`
}

// NewReport creates a Report over the given findings.
func NewReport(findings []Finding) Report {
	return Report{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Findings:  findings,
	}
}

// Passed reports whether every finding passed.
func (r Report) Passed() bool {
	for _, f := range r.Findings {
		if !f.Passed {
			return false
		}
	}

	return true
}
