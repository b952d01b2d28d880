// Package curriculum models the SOLID course: the five principles, their
// canonical definitions, and the lesson packages that demonstrate them.
//
// The embedded manifest is the single source of truth shared by the CLI and
// the document verifier. The README's definition sentences must match the
// manifest byte for byte; the document package enforces that.
package curriculum

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var manifestYAML []byte

// Acronym is the five principle letters in course order.
const Acronym = "SOLID"

var (
	// ErrPrincipleNotFound is returned by lookups when no principle matches.
	ErrPrincipleNotFound = errors.New("principle not found")
)

// Principle is one taught principle: its place in the acronym, its canonical
// one-sentence definition, and the example package that demonstrates it.
type Principle struct {
	Slug       string
	Letter     string
	Name       string
	Definition string
	Summary    string
	Order      int
	Version    *semver.Version
	Package    string
	Fixtures   []string
	References []string
}

// Lesson is implemented by every principle example package. Demonstrate runs
// the package's example narrative, writing it to w.
type Lesson interface {
	Slug() string
	Title() string
	Demonstrate(ctx context.Context, w io.Writer) error
}

// Curriculum is the ordered, validated collection of the five principles.
// A loaded Curriculum is immutable; accessors return copies.
type Curriculum struct {
	principles []Principle
}

// rawPrinciple is the manifest wire form. Versions arrive as strings since
// yaml.v3 does not decode into semver directly.
type rawPrinciple struct {
	Slug       string   `yaml:"slug"`
	Letter     string   `yaml:"letter"`
	Name       string   `yaml:"name"`
	Definition string   `yaml:"definition"`
	Summary    string   `yaml:"summary"`
	Order      int      `yaml:"order"`
	Version    string   `yaml:"version"`
	Package    string   `yaml:"package"`
	Fixtures   []string `yaml:"fixtures"`
	References []string `yaml:"references"`
}

type manifest struct {
	Principles []rawPrinciple `yaml:"principles"`
}

// Load parses the embedded manifest into a validated Curriculum.
func Load() (*Curriculum, error) {
	return Parse(manifestYAML)
}

// Parse parses a manifest document into a validated Curriculum.
func Parse(src []byte) (*Curriculum, error) {
	var m manifest
	if err := yaml.Unmarshal(src, &m); err != nil {
		return nil, fmt.Errorf("failed to parse curriculum manifest: %w", err)
	}

	principles := make([]Principle, 0, len(m.Principles))
	for _, raw := range m.Principles {
		p := Principle{
			Slug:       raw.Slug,
			Letter:     raw.Letter,
			Name:       raw.Name,
			Definition: raw.Definition,
			Summary:    strings.TrimSpace(raw.Summary),
			Order:      raw.Order,
			Package:    raw.Package,
			Fixtures:   raw.Fixtures,
			References: raw.References,
		}
		if raw.Version != "" {
			v, err := semver.NewVersion(raw.Version)
			if err != nil {
				return nil, fmt.Errorf("principle %q: invalid version %q: %w", raw.Slug, raw.Version, err)
			}
			p.Version = v
		}
		principles = append(principles, p)
	}

	c := &Curriculum{principles: principles}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the structural invariants of the curriculum: exactly five
// principles whose letters spell the acronym in order, unique non-empty
// identity fields, valid lesson versions, and a gapless 1..5 ordering.
func (c *Curriculum) Validate() error {
	if got := len(c.principles); got != len(Acronym) {
		return fmt.Errorf("curriculum must contain exactly %d principles, got %d", len(Acronym), got)
	}

	seenSlugs := make(map[string]bool)
	seenNames := make(map[string]bool)
	seenDefs := make(map[string]bool)

	for i, p := range c.principles {
		if p.Slug == "" || p.Name == "" || p.Definition == "" {
			return fmt.Errorf("principle %d: slug, name, and definition are required", i+1)
		}
		if p.Letter != string(Acronym[i]) {
			return fmt.Errorf("principle %q: letter %q out of acronym order, want %q",
				p.Slug, p.Letter, string(Acronym[i]))
		}
		if p.Order != i+1 {
			return fmt.Errorf("principle %q: order %d, want %d", p.Slug, p.Order, i+1)
		}
		if p.Version == nil {
			return fmt.Errorf("principle %q: version is required", p.Slug)
		}
		if p.Package == "" {
			return fmt.Errorf("principle %q: package is required", p.Slug)
		}
		if seenSlugs[p.Slug] {
			return fmt.Errorf("duplicate principle slug %q", p.Slug)
		}
		if seenNames[p.Name] {
			return fmt.Errorf("duplicate principle name %q", p.Name)
		}
		if seenDefs[p.Definition] {
			return fmt.Errorf("duplicate principle definition %q", p.Definition)
		}
		seenSlugs[p.Slug] = true
		seenNames[p.Name] = true
		seenDefs[p.Definition] = true
	}

	return nil
}

// All returns the principles in acronym order.
func (c *Curriculum) All() []Principle {
	out := make([]Principle, len(c.principles))
	copy(out, c.principles)

	return out
}

// BySlug returns the principle with the given slug.
func (c *Curriculum) BySlug(slug string) (Principle, error) {
	for _, p := range c.principles {
		if p.Slug == slug {
			return p, nil
		}
	}

	return Principle{}, fmt.Errorf("slug %q: %w", slug, ErrPrincipleNotFound)
}

// ByLetter returns the principle with the given acronym letter. The lookup is
// case-insensitive.
func (c *Curriculum) ByLetter(letter string) (Principle, error) {
	for _, p := range c.principles {
		if strings.EqualFold(p.Letter, letter) {
			return p, nil
		}
	}

	return Principle{}, fmt.Errorf("letter %q: %w", letter, ErrPrincipleNotFound)
}

// CrossCheck verifies that the manifest and the registered lessons agree 1:1
// by slug: every principle has a lesson and every lesson has a principle.
func (c *Curriculum) CrossCheck(lessons []Lesson) error {
	bySlug := make(map[string]Lesson, len(lessons))
	for _, l := range lessons {
		if _, ok := bySlug[l.Slug()]; ok {
			return fmt.Errorf("duplicate lesson registered for slug %q", l.Slug())
		}
		bySlug[l.Slug()] = l
	}

	for _, p := range c.principles {
		if _, ok := bySlug[p.Slug]; !ok {
			return fmt.Errorf("principle %q has no registered lesson", p.Slug)
		}
		delete(bySlug, p.Slug)
	}

	for slug := range bySlug {
		return fmt.Errorf("lesson %q has no manifest entry", slug)
	}

	return nil
}
