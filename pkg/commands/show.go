package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goprinciples/solid/curriculum"
	"github.com/goprinciples/solid/principles"
)

// Show creates the show command: one lesson in full, optionally narrated.
func (c *Commands) Show() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "show <slug|letter>",
		Short: "Show one lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := c.loadCourse()
			if err != nil {
				return err
			}

			p, err := resolve(cur, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, lesson v%s)\n\n", p.Name, p.Letter, p.Version)
			fmt.Fprintf(out, "Definition: %s\n\n", p.Definition)
			fmt.Fprintf(out, "%s\n\n", p.Summary)
			fmt.Fprintf(out, "Example package: %s\n", p.Package)
			for _, ref := range p.References {
				fmt.Fprintf(out, "Further reading: %s\n", ref)
			}

			if !demo {
				return nil
			}

			lesson := principles.BySlug(p.Slug)
			if lesson == nil {
				return fmt.Errorf("no lesson registered for %q", p.Slug)
			}

			fmt.Fprintf(out, "\n--- %s ---\n", lesson.Title())
			c.lggr.Debugw("running lesson demo", "slug", p.Slug)

			return lesson.Demonstrate(cmd.Context(), out)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "run the lesson's example narrative")

	return cmd
}

// resolve looks the argument up as a slug first, then as an acronym letter.
func resolve(cur *curriculum.Curriculum, arg string) (curriculum.Principle, error) {
	p, err := cur.BySlug(arg)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, curriculum.ErrPrincipleNotFound) {
		return curriculum.Principle{}, err
	}
	if len(arg) == 1 {
		return cur.ByLetter(arg)
	}

	return curriculum.Principle{}, err
}
