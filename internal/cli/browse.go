package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mira-tools/hybridrank/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [query]",
	Short: "Launch the interactive result browser",
	Long: `Start an interactive terminal browser over the corpus: type a
query, press Enter, and page through the ranked results with the arrow
keys or j/k.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)

		ix, _, err := loadIndex(cfg)
		if err != nil {
			printUserError(err)
			os.Exit(1)
		}

		threshold, _ := cmd.Flags().GetFloat64("threshold")
		initialQuery := strings.Join(args, " ")

		model := tui.NewModel(ix, initialQuery, threshold, cfg.MaxResults)

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error starting browser: %v\n", err)
			os.Exit(1)
		}
	},
}
