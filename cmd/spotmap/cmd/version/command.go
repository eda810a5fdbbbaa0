// Package version provides the version command.
package version

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/cmd/output"
	"github.com/agentstation/spotmap/internal/cmd/table"
)

// Info is the build information of the binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"builtBy" yaml:"builtBy"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get collects the build information from app and the runtime.
func Get(app application.Application) Info {
	return Info{
		Version:   app.Version(),
		Commit:    app.Commit(),
		Date:      app.Date(),
		BuiltBy:   app.BuiltBy(),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// NewCommand creates the version command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: "management",
		Short:   "Show version information",
		Long:    `Show version information for the spotmap CLI.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := Get(app)
			return output.Render(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), infoTable(info), info)
		},
	}
}

func infoTable(info Info) table.Data {
	return table.Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Version", info.Version},
			{"Commit", info.Commit},
			{"Built", info.Date},
			{"Built By", info.BuiltBy},
			{"Go Version", info.GoVersion},
			{"Platform", info.Platform},
		},
	}
}
