// Package principles aggregates the five lesson packages so callers can wire
// the whole course with one import.
package principles

import (
	"github.com/goprinciples/solid/curriculum"
	"github.com/goprinciples/solid/principles/dip"
	"github.com/goprinciples/solid/principles/isp"
	"github.com/goprinciples/solid/principles/lsp"
	"github.com/goprinciples/solid/principles/ocp"
	"github.com/goprinciples/solid/principles/srp"
)

var (
	_ curriculum.Lesson = srp.Lesson{}
	_ curriculum.Lesson = ocp.Lesson{}
	_ curriculum.Lesson = lsp.Lesson{}
	_ curriculum.Lesson = isp.Lesson{}
	_ curriculum.Lesson = dip.Lesson{}
)

// Lessons returns the five lessons in acronym order.
func Lessons() []curriculum.Lesson {
	return []curriculum.Lesson{
		srp.Lesson{},
		ocp.Lesson{},
		lsp.Lesson{},
		isp.Lesson{},
		dip.Lesson{},
	}
}

// BySlug returns the lesson for slug, or nil when no lesson matches.
func BySlug(slug string) curriculum.Lesson {
	for _, l := range Lessons() {
		if l.Slug() == slug {
			return l
		}
	}

	return nil
}
