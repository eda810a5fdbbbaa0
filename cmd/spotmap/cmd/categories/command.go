// Package categories provides the categories command.
package categories

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/cmd/output"
	"github.com/agentstation/spotmap/internal/cmd/table"
	"github.com/agentstation/spotmap/pkg/selection"
)

// NewCommand creates the categories command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		GroupID: "core",
		Aliases: []string{"category"},
		Short:   "Show the category display table",
		Long: `Categories prints the category selector options in display order,
starting with "all". Spots whose category has no entry here are shown
with the ` + selection.FallbackGlyph + ` icon.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := selection.Categories()
			return output.Render(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()),
				table.CategoriesToTableData(options), options)
		},
	}
}
