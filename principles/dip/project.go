package dip

import (
	"errors"
	"fmt"

	"github.com/goprinciples/solid/pkg/logger"
)

// ErrNoTeam is returned when a sprint is run with nobody on the project.
var ErrNoTeam = errors.New("project has no developers")

// Contribution is one unit of delivered work.
type Contribution struct {
	Author string
	Work   string
}

// Developer is the abstraction both sides depend on: the high-level Project
// asks for it, the low-level concrete developers satisfy it.
type Developer interface {
	Develop() Contribution
}

// FrontendDeveloper builds interfaces.
type FrontendDeveloper struct {
	Name string
}

// Develop delivers a frontend contribution.
func (d FrontendDeveloper) Develop() Contribution {
	return Contribution{Author: d.Name, Work: "user interface"}
}

// BackendDeveloper builds services.
type BackendDeveloper struct {
	Name string
}

// Develop delivers a backend contribution.
func (d BackendDeveloper) Develop() Contribution {
	return Contribution{Author: d.Name, Work: "service endpoint"}
}

var (
	_ Developer = FrontendDeveloper{}
	_ Developer = BackendDeveloper{}
)

// Project is the high-level module. It holds abstractions only; the concrete
// team and logger arrive through the constructor.
type Project struct {
	name string
	team []Developer
	lggr logger.Logger
}

// NewProject creates a project staffed with the given team.
func NewProject(name string, lggr logger.Logger, team ...Developer) *Project {
	return &Project{name: name, team: team, lggr: lggr}
}

// Sprint runs one sprint: every developer contributes once.
func (p *Project) Sprint() ([]Contribution, error) {
	if len(p.team) == 0 {
		return nil, fmt.Errorf("project %q: %w", p.name, ErrNoTeam)
	}

	out := make([]Contribution, 0, len(p.team))
	for _, dev := range p.team {
		c := dev.Develop()
		p.lggr.Debugw("contribution delivered", "project", p.name, "author", c.Author, "work", c.Work)
		out = append(out, c)
	}

	return out, nil
}
