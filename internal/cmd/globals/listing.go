// Package globals provides shared flag structures for CLI commands.
package globals

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/query"
)

// ListingFlags holds the filter flags of listing commands.
type ListingFlags struct {
	Region   string
	Category string
	Sort     string
	Limit    int
}

// AddListingFlags adds --region, --category, --sort and --limit to a command.
func AddListingFlags(cmd *cobra.Command) *ListingFlags {
	flags := &ListingFlags{}

	cmd.Flags().StringVarP(&flags.Region, "region", "r", query.All,
		"Region id, or \"all\"")
	cmd.Flags().StringVarP(&flags.Category, "category", "c", query.All,
		"Category: all, "+strings.Join(catalogs.CategoryStrings(), ", "))
	cmd.Flags().StringVarP(&flags.Sort, "sort", "s", string(query.SortRating),
		"Sort order: "+strings.Join(sortKeys(), ", "))
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	_ = cmd.RegisterFlagCompletionFunc("category", fixedCompletion(append([]string{query.All}, catalogs.CategoryStrings()...)))
	_ = cmd.RegisterFlagCompletionFunc("sort", fixedCompletion(sortKeys()))

	return flags
}

// ParseListing extracts listing flags from a command.
// The command must have had AddListingFlags called on it, otherwise this will panic.
func ParseListing(cmd *cobra.Command) *ListingFlags {
	return &ListingFlags{
		Region:   mustGetString(cmd, "region"),
		Category: mustGetString(cmd, "category"),
		Sort:     mustGetString(cmd, "sort"),
		Limit:    mustGetInt(cmd, "limit"),
	}
}

func sortKeys() []string {
	keys := query.SortKeys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
