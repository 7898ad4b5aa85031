package cli

import (
	"fmt"
	"strings"

	"github.com/mira-tools/hybridrank/internal/recovery"
	"github.com/mira-tools/hybridrank/internal/suggest"
	"github.com/mira-tools/hybridrank/internal/validation"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Propose \"did you mean?\" alternatives for a typo-prone query",
	Long: `Suggest alternate corpus display keys for a query using fuzzy
string matching. This is an outer-layer convenience over the corpus, kept
entirely separate from the ranking engine's scoring.

Examples:
  hybridrank suggest "comitt"
  hybridrank suggest --limit 5 "confgiure"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		cleanQuery, err := validation.ValidateQuery(query)
		if err != nil {
			printUserError(err)
			return
		}
		query = cleanQuery

		cfg := loadConfig(cmd)

		corpusRecovery := recovery.NewCorpusRecovery(recovery.DefaultRetryConfig())
		rows, err := corpusRecovery.LoadWithFallback(cfg.GetCorpusPath(), cfg.GetPersonalCorpusPath())
		if err != nil {
			printUserError(err)
			return
		}

		limit, _ := cmd.Flags().GetInt("limit")
		suggestions := suggest.NewSuggester(rows).Suggest(query, limit)

		if len(suggestions) == 0 {
			fmt.Printf("No suggestions found for '%s'.\n", query)
			return
		}

		fmt.Printf("Did you mean:\n")
		for _, s := range suggestions {
			fmt.Printf("  - %s\n", s)
		}
	},
}
