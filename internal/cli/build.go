package cli

import (
	"fmt"
	"time"

	"github.com/mira-tools/hybridrank/internal/errors"
	"github.com/mira-tools/hybridrank/internal/validation"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Load a corpus and report index statistics",
	Long: `Load the YAML corpus, build an Index from it and report row,
term and gram counts. Use this to validate a corpus file and time the
build step before running queries against it.

Examples:
  hybridrank build
  hybridrank build --corpus assets/corpus.yml --verbose`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)

		if err := validation.ValidateCorpusPath(cfg.GetCorpusPath()); err != nil {
			printUserError(err)
			return
		}

		verbose, _ := cmd.Flags().GetBool("verbose")

		start := time.Now()
		ix, rowCount, err := loadIndex(cfg)
		if err != nil {
			printUserError(err)
			if verbose {
				wrapped := errors.NewCorpusError("build", cfg.GetCorpusPath(), err)
				fmt.Printf("%s\n", wrapped.Error())
			}
			return
		}
		buildDuration := time.Since(start)

		queryCache.InvalidateAll()

		fmt.Printf("Built index from %s\n", cfg.GetCorpusPath())
		fmt.Printf("  rows:         %d\n", rowCount)
		fmt.Printf("  search terms: %d\n", ix.Size())
		fmt.Printf("  grams:        %d\n", ix.LibSize())
		fmt.Printf("  gram size:    %d\n", cfg.GramSize)
		fmt.Printf("  build time:   %v\n", buildDuration)
	},
}
