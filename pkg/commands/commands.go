// Package commands provides the course CLI commands.
//
// Commands are created through the Commands factory so the logger and
// configuration are set once and shared:
//
//	cmds := commands.New(lggr, cfg)
//	root.AddCommand(
//	    cmds.List(),
//	    cmds.Show(),
//	    cmds.Verify(),
//	    cmds.Version(),
//	)
package commands

import (
	"github.com/goprinciples/solid/curriculum"
	"github.com/goprinciples/solid/internal/config"
	"github.com/goprinciples/solid/pkg/logger"
	"github.com/goprinciples/solid/principles"
)

// Commands is a factory for CLI commands with shared configuration.
type Commands struct {
	lggr logger.Logger
	cfg  *config.Config
}

// New creates a Commands factory. A nil cfg falls back to defaults.
func New(lggr logger.Logger, cfg *config.Config) *Commands {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Commands{lggr: lggr, cfg: cfg}
}

// loadCourse loads the curriculum and cross-checks it against the registered
// lessons so every command starts from a consistent course.
func (c *Commands) loadCourse() (*curriculum.Curriculum, error) {
	cur, err := curriculum.Load()
	if err != nil {
		return nil, err
	}
	if err := cur.CrossCheck(principles.Lessons()); err != nil {
		return nil, err
	}

	return cur, nil
}
