// Package navigate provides the navigate command, which prints the
// screen a selection leads to.
package navigate

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/cmd/alerts"
	"github.com/agentstation/spotmap/internal/cmd/output"
	"github.com/agentstation/spotmap/internal/cmd/table"
	"github.com/agentstation/spotmap/pkg/navigation"
)

// Result is the structured output of navigate.
type Result struct {
	Target navigation.Target `json:"target" yaml:"target"`
	Path   string            `json:"path" yaml:"path"`
	Exists bool              `json:"exists" yaml:"exists"`
}

// NewCommand creates the navigate command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "navigate <action> [id]",
		GroupID: "core",
		Aliases: []string{"nav"},
		Short:   "Show where a selection leads",
		Long: `Navigate builds the target of a selection and prints its view, parameters
and route. Actions: ` + strings.Join(actionNames(), ", ") + `.

Identifiers are only checked for form; a well-formed id missing from the
catalog still navigates and is reported with exists=false.`,
		Example: `  spotmap navigate region tokyo
  spotmap navigate all
  spotmap navigate category temple
  spotmap navigate spot sensoji`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: actionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 2 {
				id = args[1]
			}
			result, err := Resolve(app, args[0], id)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}
			if !result.Exists {
				alerts.NewWriter(cmd.ErrOrStderr()).Warning("target does not exist in the catalog", result.Path)
			}

			rows := table.Data{
				Headers: []string{"View", "Params", "Path", "Exists"},
				Rows: [][]string{{
					string(result.Target.View),
					formatParams(result.Target.Params),
					result.Path,
					boolString(result.Exists),
				}},
			}
			return output.Render(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), rows, result)
		},
	}
}

// Resolve builds the target of an action and checks it against the catalog.
func Resolve(app application.Application, action, id string) (*Result, error) {
	target, err := navigation.FromAction(action, id)
	if err != nil {
		return nil, err
	}
	cat, err := app.Catalog()
	if err != nil {
		return nil, err
	}
	return &Result{
		Target: target,
		Path:   target.Path(),
		Exists: navigation.Resolves(cat, target),
	}, nil
}

func actionNames() []string {
	actions := navigation.Actions()
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}

// formatParams renders params in a fixed key order.
func formatParams(params map[string]string) string {
	var parts []string
	for _, key := range []string{navigation.ParamRegion, navigation.ParamCategory, navigation.ParamID} {
		if v, ok := params[key]; ok {
			parts = append(parts, key+"="+v)
		}
	}
	return table.Join(parts)
}

func boolString(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
