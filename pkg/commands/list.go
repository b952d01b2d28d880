package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// List creates the list command: a table of the five principles.
func (c *Commands) List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the five principles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cur, err := c.loadCourse()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Letter", "Slug", "Name", "Version", "Definition"})
			table.SetAutoWrapText(false)
			if c.cfg.NoColor {
				table.SetBorder(false)
			}

			for _, p := range cur.All() {
				table.Append([]string{p.Letter, p.Slug, p.Name, p.Version.String(), p.Definition})
			}
			table.Render()

			return nil
		},
	}
}
