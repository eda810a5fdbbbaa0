// Package generate provides the generate command and its subcommands.
package generate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/cmd/application"
)

// NewCommand creates the generate command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "management",
		Short:   "Generate artifacts (docs, completion)",
		Long:    `Generate markdown documentation for the catalog and shell completion scripts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewDocsCommand(app))
	cmd.AddCommand(NewCompletionCommand())

	return cmd
}
