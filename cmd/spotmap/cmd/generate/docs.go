package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/cmd/alerts"
	"github.com/agentstation/spotmap/internal/tools/docs"
	"github.com/agentstation/spotmap/pkg/constants"
)

// NewDocsCommand creates the generate docs subcommand.
func NewDocsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate markdown documentation for the catalog",
		Long: `Docs writes a README.md region index and one <region>.md page per region,
listing its spots from highest to lowest rated.`,
		Example: `  spotmap generate docs
  spotmap generate docs --output ./documentation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputDir, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			return runDocs(cmd, app, outputDir)
		},
	}

	// -o is taken by the global --format flag.
	cmd.Flags().StringP("output", "d", constants.DefaultDocsPath, "Output directory for generated documentation")

	return cmd
}

func runDocs(cmd *cobra.Command, app application.Application, outputDir string) error {
	cat, err := app.Catalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	generator := docs.New(
		docs.WithOutputDir(outputDir),
		docs.WithVerbose(true),
		docs.WithOutput(cmd.OutOrStdout()),
	)

	written, err := generator.Generate(cmd.Context(), cat)
	if err != nil {
		return fmt.Errorf("generating documentation: %w", err)
	}

	app.Logger().Debug().Str("dir", outputDir).Int("files", len(written)).Msg("Documentation generated")
	alerts.NewWriter(cmd.ErrOrStderr()).Success(fmt.Sprintf("wrote %d files to %s", len(written), outputDir))
	return nil
}
