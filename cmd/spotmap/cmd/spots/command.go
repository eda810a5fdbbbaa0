// Package spots provides the spots command: filtered listings and spot
// detail.
package spots

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/cmd/alerts"
	"github.com/agentstation/spotmap/internal/cmd/globals"
	"github.com/agentstation/spotmap/internal/cmd/output"
	"github.com/agentstation/spotmap/internal/cmd/table"
	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/selection"
)

// NewCommand creates the spots command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "spots [spot-id]",
		GroupID: "core",
		Aliases: []string{"spot"},
		Short:   "Show a spot, or list spots with the list subcommand",
		Example: `  spotmap spots tokyo-tower                        # Show one spot
  spotmap spots list --region tokyo --category temple
  spotmap spots list --sort name -o wide`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return showSpot(cmd, app, catalogs.SpotID(args[0]))
		},
	}

	cmd.AddCommand(NewListCommand(app))
	return cmd
}

// NewListCommand creates the spots list subcommand.
func NewListCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List spots by region and category",
		Long: `List filters spots by region and category and orders them by rating
(highest first) or by name. Unknown values are rejected; use "all" to lift
a restriction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listSpots(cmd, app, globals.ParseListing(cmd))
		},
	}

	globals.AddListingFlags(cmd)
	return cmd
}

func listSpots(cmd *cobra.Command, app application.Application, flags *globals.ListingFlags) error {
	sm, err := app.Spotmap()
	if err != nil {
		return err
	}

	f, err := sm.Parse(flags.Region, flags.Category, flags.Sort)
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}

	view := sm.Selection(string(f.Region),
		selection.WithInitialCategory(string(f.Category)),
		selection.WithInitialSort(string(f.Sort)),
	).View()

	if flags.Limit > 0 && len(view.Spots) > flags.Limit {
		view.Spots = view.Spots[:flags.Limit]
		view.Count = len(view.Spots)
	}

	app.Logger().Debug().
		Str("filter", f.String()).
		Int("count", view.Count).
		Msg("Listing spots")

	if view.Empty != nil {
		alerts.NewWriter(cmd.ErrOrStderr()).Info(view.Empty.Message,
			fmt.Sprintf("reset: spotmap spots list --region %s", view.Empty.Reset.Region))
	}

	format := output.DetectFormat(app.OutputFormat())
	return output.Render(cmd.OutOrStdout(), format,
		table.CardsToTableData(view.Spots, format == output.FormatWide),
		view)
}

func showSpot(cmd *cobra.Command, app application.Application, id catalogs.SpotID) error {
	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	detail, err := selection.Detail(cat, id)
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}

	return output.Render(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()),
		table.SpotToTableData(detail.Spot, detail.CategoryInfo, detail.RegionName),
		detail)
}
