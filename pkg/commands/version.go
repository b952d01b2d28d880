package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the module version string, overridable at build time:
//
//	go build -ldflags "-X github.com/goprinciples/solid/pkg/commands.version=v1.2.3"
var version = "dev"

// Version creates the version command.
func (c *Commands) Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
