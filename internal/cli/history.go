package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/mira-tools/hybridrank/internal/history"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [pattern]",
	Short: "View and manage query history",
	Long: `View your query history and get quick access to recent queries.

Examples:
  hybridrank history                 # Show recent queries
  hybridrank history comit           # Show queries containing "comit"
  hybridrank history --top           # Show most frequent queries
  hybridrank history --stats         # Show usage statistics
  hybridrank history --clear         # Clear all history`,
	Run: func(cmd *cobra.Command, args []string) {
		showTop, _ := cmd.Flags().GetBool("top")
		showStats, _ := cmd.Flags().GetBool("stats")
		clearHistory, _ := cmd.Flags().GetBool("clear")
		limit, _ := cmd.Flags().GetInt("entries")

		historyPath := history.DefaultHistoryPath()
		searchHistory := history.NewSearchHistory(historyPath, 100)

		if err := searchHistory.Load(); err != nil {
			fmt.Printf("Error loading query history: %v\n", err)
			return
		}

		if clearHistory {
			if err := searchHistory.Clear(); err != nil {
				fmt.Printf("Error clearing history: %v\n", err)
				return
			}
			fmt.Println("Query history cleared.")
			return
		}

		if showStats {
			stats := searchHistory.GetStats()
			fmt.Println("Query History Statistics")
			fmt.Println(strings.Repeat("=", 28))
			fmt.Printf("Total queries: %d\n", stats.TotalSearches)
			fmt.Printf("Unique queries: %d\n", stats.UniqueQueries)
			fmt.Printf("Average results per query: %.1f\n", stats.AvgResultsPerSearch)
			if stats.AvgSearchDuration > 0 {
				fmt.Printf("Average query duration: %.1fms\n", stats.AvgSearchDuration)
			}
			if !stats.OldestEntry.IsZero() {
				fmt.Printf("First query: %s\n", stats.OldestEntry.Format("2006-01-02 15:04"))
				fmt.Printf("Last query: %s\n", stats.NewestEntry.Format("2006-01-02 15:04"))
			}
			return
		}

		if showTop {
			topQueries := searchHistory.GetTopQueries(limit)
			if len(topQueries) == 0 {
				fmt.Println("No query history found.")
				return
			}

			fmt.Println("Most Frequent Queries")
			fmt.Println(strings.Repeat("=", 24))
			for i, qf := range topQueries {
				fmt.Printf("%d. %q (%d times, last used: %s)\n",
					i+1, qf.Query, qf.Count, qf.LastUsed.Format("Jan 2 15:04"))
			}
			return
		}

		if len(args) > 0 {
			pattern := strings.Join(args, " ")
			entries := searchHistory.GetEntriesByPattern(pattern)

			if len(entries) == 0 {
				fmt.Printf("No queries found matching: %s\n", pattern)
				return
			}

			fmt.Printf("Queries matching %q\n", pattern)
			fmt.Println(strings.Repeat("=", len(pattern)+20))

			for i, entry := range entries {
				if i >= limit {
					break
				}
				timeAgo := formatTimeAgo(time.Since(entry.Timestamp))
				fmt.Printf("%d. %q (%d results, %s)\n", i+1, entry.Query, entry.ResultsCount, timeAgo)
			}
			return
		}

		recentQueries := searchHistory.GetRecentQueries(limit)
		if len(recentQueries) == 0 {
			fmt.Println("No query history found.")
			fmt.Println("Start searching to build your history: hybridrank \"your query\"")
			return
		}

		fmt.Println("Recent Queries")
		fmt.Println(strings.Repeat("=", 17))
		for i, query := range recentQueries {
			fmt.Printf("%d. %s\n", i+1, query)
		}

		fmt.Printf("\nTo run a query again: hybridrank \"%s\"\n", recentQueries[0])
	},
}

func formatTimeAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		minutes := int(d.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	default:
		days := int(d.Hours()) / 24
		switch {
		case days == 1:
			return "1 day ago"
		case days < 7:
			return fmt.Sprintf("%d days ago", days)
		case days < 30:
			weeks := days / 7
			if weeks == 1 {
				return "1 week ago"
			}
			return fmt.Sprintf("%d weeks ago", weeks)
		default:
			months := days / 30
			if months == 1 {
				return "1 month ago"
			}
			return fmt.Sprintf("%d months ago", months)
		}
	}
}

func init() {
	historyCmd.Flags().BoolP("top", "f", false, "Show most frequent queries")
	historyCmd.Flags().BoolP("stats", "s", false, "Show query statistics")
	historyCmd.Flags().BoolP("clear", "r", false, "Clear all query history")
	historyCmd.Flags().IntP("entries", "e", 10, "Maximum number of entries to show")
}
