// Package cli wires the hybridrank ranking engine into a cobra-based
// command-line tool: search, build, suggest, browse and history
// subcommands over the library in internal/hybridrank.
package cli

import (
	"fmt"

	"github.com/mira-tools/hybridrank/internal/errors"
	"github.com/mira-tools/hybridrank/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "hybridrank [query]",
	Short:   "In-memory hybrid edit-distance/n-gram ranking over a corpus",
	Version: version.Version,
	Long: `hybridrank is a command-line tool over an in-memory hybrid
ranking engine: a string pool, an n-gram inverted index, and an
edit-distance kernel fused into one ranked result list.

Examples:
  hybridrank "comit"
  hybridrank search "comit" --limit 10
  hybridrank build --corpus assets/corpus.yml
  hybridrank suggest "comitt"
  hybridrank browse "find"`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		searchCmd.Run(cmd, args)
	},
}

// Execute runs the root command, returning any error cobra surfaces.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print timing and index diagnostics")
	rootCmd.PersistentFlags().StringP("corpus", "c", "", "Path to the YAML corpus file (overrides config default)")
	rootCmd.PersistentFlags().IntP("limit", "l", 0, "Maximum number of results (0 = package default)")
	rootCmd.PersistentFlags().Float64P("threshold", "t", 0, "Minimum raw per-term score to admit a candidate")
	rootCmd.PersistentFlags().IntP("gram-size", "g", 0, "N-gram width used to build the index (0 = config default)")
	rootCmd.PersistentFlags().String("format", "list", "Output format: list, table, or json")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable ANSI color output")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(historyCmd)
}

func printUserError(err error) {
	fmt.Printf("%s\n", errors.GetUserFriendlyMessage(err))
	if suggestions := errors.GetErrorSuggestions(err); len(suggestions) > 0 {
		fmt.Printf("\nSuggestions:\n")
		for _, s := range suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
}
