package cli

import (
	"time"

	"github.com/mira-tools/hybridrank/internal/cache"
	"github.com/mira-tools/hybridrank/internal/config"
	"github.com/mira-tools/hybridrank/internal/hybridrank"
	"github.com/mira-tools/hybridrank/internal/metrics"
	"github.com/mira-tools/hybridrank/internal/recovery"

	"github.com/spf13/cobra"
)

var queryCache = cache.NewCacheManager()

// loadConfig builds a *config.Config from defaults overridden by the
// persistent CLI flags shared by every subcommand.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.DefaultConfig()

	if corpusPath, _ := cmd.Flags().GetString("corpus"); corpusPath != "" {
		cfg.CorpusPath = corpusPath
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		cfg.MaxResults = limit
	}
	if threshold, _ := cmd.Flags().GetFloat64("threshold"); threshold > 0 {
		cfg.Threshold = threshold
	}
	if gramSize, _ := cmd.Flags().GetInt("gram-size"); gramSize > 0 {
		cfg.GramSize = gramSize
	}

	return cfg
}

// loadIndex loads the corpus (main + personal, with retry/fallback
// recovery) and builds an Index from it. The build duration, row count,
// pool size and gram-index size are recorded via internal/metrics.
func loadIndex(cfg *config.Config) (*hybridrank.Index, int, error) {
	corpusRecovery := recovery.NewCorpusRecovery(recovery.DefaultRetryConfig())
	rows, err := corpusRecovery.LoadWithFallback(cfg.GetCorpusPath(), cfg.GetPersonalCorpusPath())
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	indexRecovery := recovery.NewIndexRecovery()
	ix, err := indexRecovery.BuildWithFallback(rows, hybridrank.BuildConfig{GramSize: cfg.GramSize})
	if err != nil {
		return nil, len(rows), err
	}
	buildDuration := time.Since(start)

	metrics.RecordBuildOperation(buildDuration, len(rows), ix.Size(), ix.LibSize())

	return ix, len(rows), nil
}

// searchCached runs ix.Search through the process-wide query cache, keyed
// on (query, threshold, limit), and reports whether the result came from
// the cache so callers can feed it into internal/metrics.
func searchCached(ix *hybridrank.Index, cfg *config.Config, query string, threshold float64, limit int) ([]hybridrank.Result, bool) {
	qc := queryCache.GetQueryCache()
	opts := cache.QueryOptions{Threshold: threshold, Limit: limit}

	if cfg.CacheEnabled {
		if cached, ok := qc.Get(query, opts); ok {
			results := make([]hybridrank.Result, len(cached))
			for i, r := range cached {
				results[i] = hybridrank.Result{Display: r.Display, Score: r.Score}
			}
			return results, true
		}
	}

	results := ix.Search(query, threshold, limit)

	if cfg.CacheEnabled {
		cached := make([]cache.QueryResult, len(results))
		for i, r := range results {
			cached[i] = cache.QueryResult{Display: r.Display, Score: r.Score}
		}
		qc.Put(query, opts, cached)
	}

	return results, false
}

func elapsedMillis(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
