// Package validate provides the validate command.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/cmd/alerts"
	"github.com/agentstation/spotmap/internal/cmd/output"
	"github.com/agentstation/spotmap/internal/cmd/table"
	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/errors"
)

// NewCommand creates the validate command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Validate the catalog",
		Long: `Validate loads the catalog, which checks every record and the references
between them, and then audits the authored region fields against the spots:

  - stats.spots must match the number of spots in the region
  - every topSpots id must exist and belong to the region

Audit findings are warnings. Use --strict to fail on them.`,
		Example: `  spotmap validate
  spotmap validate --strict
  spotmap validate --catalog-path ./catalog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strict, err := cmd.Flags().GetBool("strict")
			if err != nil {
				return err
			}
			return run(cmd, app, strict)
		},
	}

	cmd.Flags().Bool("strict", false, "Fail when the audit reports any issue")
	return cmd
}

func run(cmd *cobra.Command, app application.Application, strict bool) error {
	w := alerts.NewWriter(cmd.ErrOrStderr())

	cat, err := app.Catalog()
	if err != nil {
		cmd.SilenceUsage = true
		w.Error("catalog failed to load")
		return err
	}

	report := catalogs.Audit(cat)
	app.Logger().Debug().
		Int("regions", report.Regions).
		Int("spots", report.Spots).
		Int("issues", len(report.Issues)).
		Msg("Catalog audited")

	format := output.DetectFormat(app.OutputFormat())
	if err := output.Render(cmd.OutOrStdout(), format, issuesTable(report), report); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d regions, %d spots", report.Regions, report.Spots)
	if report.OK() {
		w.Success("catalog is valid", summary)
		return nil
	}

	w.Warning(fmt.Sprintf("audit found %d issue(s)", len(report.Issues)), summary)
	if strict {
		cmd.SilenceUsage = true
		return errors.NewValidationError("catalog", "", fmt.Sprintf("audit found %d issue(s)", len(report.Issues)))
	}
	return nil
}

func issuesTable(report *catalogs.AuditReport) table.Data {
	rows := make([][]string, 0, len(report.Issues))
	for _, issue := range report.Issues {
		rows = append(rows, []string{string(issue.Region), string(issue.Kind), issue.Message})
	}
	return table.Data{Headers: []string{"Region", "Kind", "Message"}, Rows: rows}
}
