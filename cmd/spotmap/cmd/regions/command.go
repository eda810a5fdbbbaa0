// Package regions provides the regions command.
package regions

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/cmd/output"
	"github.com/agentstation/spotmap/internal/cmd/table"
	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/selection"
)

// Detail is the structured output of `regions <id>`.
type Detail struct {
	selection.RegionCard `yaml:",inline"`
	SpotCount            int            `json:"spotCount" yaml:"spotCount"`
	Area                 *catalogs.Area `json:"area,omitempty" yaml:"area,omitempty"`
}

// NewCommand creates the regions command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "regions [region-id]",
		GroupID: "core",
		Aliases: []string{"region"},
		Short:   "List regions or show one region",
		Long: `Regions lists every region in catalog order with its authored stats and
curated top spots. With an id it shows the region in detail, including the
bounding box of its spots.`,
		Example: `  spotmap regions            # List all regions
  spotmap regions tokyo      # Show one region
  spotmap regions -o json    # Machine readable`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			cat, err := app.Catalog()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			ids := cat.Regions().IDs()
			out := make([]string, len(ids))
			for i, id := range ids {
				out[i] = string(id)
			}
			return out, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showRegion(cmd, app, catalogs.RegionID(args[0]))
			}
			return listRegions(cmd, app)
		},
	}
}

func listRegions(cmd *cobra.Command, app application.Application) error {
	sm, err := app.Spotmap()
	if err != nil {
		return err
	}

	home := sm.Home()
	format := output.DetectFormat(app.OutputFormat())

	app.Logger().Debug().Int("regions", len(home.Regions)).Msg("Listing regions")

	return output.Render(cmd.OutOrStdout(), format,
		table.RegionsToTableData(home.Regions, format == output.FormatWide),
		home.Regions)
}

func showRegion(cmd *cobra.Command, app application.Application, id catalogs.RegionID) error {
	detail, err := Describe(app, id)
	if err != nil {
		return err
	}

	return output.Render(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()),
		table.RegionToTableData(detail.RegionCard, detail.SpotCount, detail.Area),
		detail)
}

// Describe resolves a region with its top spots, its actual spot count and
// the bounds of its spots.
func Describe(app application.Application, id catalogs.RegionID) (*Detail, error) {
	cat, err := app.Catalog()
	if err != nil {
		return nil, err
	}

	region, err := cat.Region(id)
	if err != nil {
		return nil, err
	}
	spots, err := cat.SpotsInRegion(id)
	if err != nil {
		return nil, err
	}
	bound, err := cat.Bounds(id)
	if err != nil {
		return nil, err
	}

	return &Detail{
		RegionCard: selection.NewRegionCard(cat, region),
		SpotCount:  len(spots),
		Area:       catalogs.AreaOf(bound),
	}, nil
}
