package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mira-tools/hybridrank/internal/errors"
	"github.com/mira-tools/hybridrank/internal/history"
	"github.com/mira-tools/hybridrank/internal/hybridrank"
	"github.com/mira-tools/hybridrank/internal/metrics"
	"github.com/mira-tools/hybridrank/internal/validation"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Rank corpus entries against a query",
	Long: `Search the corpus using the hybrid edit-distance/n-gram ranking
engine.

Examples:
  hybridrank search "comit"
  hybridrank search --limit 10 "confgiure"
  hybridrank search --format json "instal"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startTime := time.Now()
		query := strings.Join(args, " ")

		cleanQuery, err := validation.ValidateQuery(query)
		if err != nil {
			printUserError(err)
			return
		}
		query = cleanQuery

		verbose, _ := cmd.Flags().GetBool("verbose")
		limitFlag, _ := cmd.Flags().GetInt("limit")
		validLimit, err := validation.ValidateLimit(limitFlag)
		if err != nil {
			printUserError(err)
			return
		}

		cfg := loadConfig(cmd)
		cfg.MaxResults = validLimit

		ix, rowCount, err := loadIndex(cfg)
		if err != nil {
			printUserError(err)
			return
		}

		if verbose {
			fmt.Printf("Loaded %d corpus rows, %d search terms, %d grams (%s)\n",
				rowCount, ix.Size(), ix.LibSize(), cfg.GetCorpusPath())
		}

		threshold, _ := cmd.Flags().GetFloat64("threshold")
		results, cacheHit := searchCached(ix, cfg, query, threshold, cfg.MaxResults)

		searchDuration := time.Since(startTime)
		metrics.RecordSearchOperation(searchDuration, len(results), cacheHit, len(query))

		historyPath := history.DefaultHistoryPath()
		searchHistory := history.NewSearchHistory(historyPath, 100)
		_ = searchHistory.Load()
		searchHistory.AddEntry(query, len(results), "", searchDuration)
		_ = searchHistory.Save()

		if len(results) == 0 {
			fmt.Printf("No results found matching '%s'.\n\n", query)
			fmt.Println("Try: hybridrank suggest \"" + query + "\"")
			if verbose {
				qErr := errors.NewQueryError(query, errors.NewQueryFailedError(query, nil))
				fmt.Printf("%s\n", qErr.Error())
			}
			return
		}

		printResults(cmd, results, searchDuration)

		if verbose {
			fmt.Printf("Session stats: %s\n", metrics.Stats())
		}
	},
}

func printResults(cmd *cobra.Command, results []hybridrank.Result, searchDuration time.Duration) {
	format, _ := cmd.Flags().GetString("format")
	noColor, _ := cmd.Flags().GetBool("no-color")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if !noColor {
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			noColor = true
		}
	}

	color := func(code string) string {
		if noColor {
			return ""
		}
		return code
	}
	reset := color("\x1b[0m")
	bold := color("\x1b[1m")
	cyan := color("\x1b[36m")
	yellow := color("\x1b[33m")
	gray := color("\x1b[90m")

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	switch strings.ToLower(format) {
	case "json":
		type outItem struct {
			Display string  `json:"display"`
			Score   float64 `json:"score"`
		}
		out := make([]outItem, len(results))
		for i, r := range results {
			out[i] = outItem{Display: r.Display, Score: r.Score}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)

	case "table":
		fmt.Printf("%s%-3s %-48s %-10s%s\n", bold, "#", "Display", "Score", reset)
		fmt.Printf("%s%s%s\n", gray, strings.Repeat("-", 64), reset)
		for i, r := range results {
			display := r.Display
			if len(display) > 48 {
				display = display[:45] + "..."
			}
			fmt.Printf("%-3d %-48s %-10.2f\n", i+1, display, r.Score)
		}

	default: // list
		fmt.Printf("Found %d matching entr(ies):\n\n", len(results))
		for i, r := range results {
			fmt.Printf("%s%d.%s %s%s%s\n", bold, i+1, reset, cyan, r.Display, reset)
			fmt.Printf("   %sScore:%s %.2f\n", yellow, reset, r.Score)
			fmt.Println()
		}
	}

	if verbose {
		fmt.Printf("Search completed in %v\n", searchDuration)
	}
}
