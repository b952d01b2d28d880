package dip

import (
	"context"
	"fmt"
	"io"

	"github.com/goprinciples/solid/pkg/logger"
)

// Lesson narrates the dependency inversion example.
type Lesson struct{}

func (Lesson) Slug() string  { return "dip" }
func (Lesson) Title() string { return "Dependency Inversion Principle" }

// Demonstrate staffs the same Project type two different ways, something the
// rigid variant cannot do at all.
func (Lesson) Demonstrate(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	inHouse := NewProject("launch", logger.Nop(),
		FrontendDeveloper{Name: "Ada"},
		BackendDeveloper{Name: "Grace"},
	)
	outsourced := NewProject("launch", logger.Nop(),
		BackendDeveloper{Name: "Contractor Co."},
	)

	for _, p := range []*Project{inHouse, outsourced} {
		contributions, err := p.Sprint()
		if err != nil {
			return err
		}
		for _, c := range contributions {
			fmt.Fprintf(w, "%s delivered a %s\n", c.Author, c.Work)
		}
	}
	fmt.Fprintln(w, "Same Project type both times; only the injected team changed.")

	return nil
}
