package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goprinciples/solid/document"
)

// ErrVerificationFailed is returned when the document fails any check.
var ErrVerificationFailed = errors.New("document verification failed")

// Verify creates the verify command: parse the teaching document and run the
// documentation-quality checks against the curriculum.
func (c *Commands) Verify() *cobra.Command {
	var (
		readmePath string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the teaching document against the curriculum",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cur, err := c.loadCourse()
			if err != nil {
				return err
			}

			src, err := os.ReadFile(readmePath)
			if err != nil {
				return fmt.Errorf("failed to read document: %w", err)
			}

			doc, err := document.Parse(src)
			if err != nil {
				return fmt.Errorf("failed to parse document: %w", err)
			}

			report := document.NewVerifier().Verify(doc, cur)
			c.lggr.Infow("document verified", "report", report.ID, "passed", report.Passed())

			if asJSON {
				if err := report.RenderJSON(cmd.OutOrStdout()); err != nil {
					return err
				}
			} else {
				report.Render(cmd.OutOrStdout())
			}

			if !report.Passed() {
				return fmt.Errorf("%s: %w", readmePath, ErrVerificationFailed)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&readmePath, "readme", c.cfg.ReadmePath, "path to the teaching document")
	cmd.Flags().BoolVar(&asJSON, "json", false, "render the report as JSON")

	return cmd
}
