// Package recovery provides error recovery mechanisms for the hybridrank
// application: retrying and falling back during corpus loading, and
// padding a too-small corpus before index building gives up with an error.
package recovery

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/mira-tools/hybridrank/internal/corpus"
	"github.com/mira-tools/hybridrank/internal/errors"
	"github.com/mira-tools/hybridrank/internal/hybridrank"
)

// RetryConfig holds configuration for retry operations.
type RetryConfig struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns a sensible default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		BaseDelay:     100 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
	}
}

// CorpusRecovery handles corpus loading with fallback mechanisms.
type CorpusRecovery struct {
	retryConfig RetryConfig
}

// NewCorpusRecovery creates a new corpus recovery instance.
func NewCorpusRecovery(config RetryConfig) *CorpusRecovery {
	return &CorpusRecovery{
		retryConfig: config,
	}
}

// LoadWithFallback attempts to load the corpus with multiple fallback
// strategies, in order: retried primary load, a sibling ".backup" file, an
// embedded default corpus, and finally a minimal two-entry corpus.
func (cr *CorpusRecovery) LoadWithFallback(primaryPath, personalPath string) ([]hybridrank.Row, error) {
	rows, err := cr.loadWithRetry(primaryPath, personalPath)
	if err == nil {
		return rows, nil
	}

	primaryErr := err

	fallbackStrategies := []struct {
		name string
		fn   func() ([]hybridrank.Row, error)
	}{
		{
			name: "backup corpus",
			fn:   func() ([]hybridrank.Row, error) { return cr.loadBackupCorpus(primaryPath) },
		},
		{
			name: "embedded default corpus",
			fn:   cr.loadEmbeddedCorpus,
		},
		{
			name: "minimal corpus",
			fn:   cr.createMinimalCorpus,
		},
	}

	for _, strategy := range fallbackStrategies {
		if rows, err := strategy.fn(); err == nil {
			recoveryErr := errors.NewAppError(
				errors.ErrorTypeCorpus,
				fmt.Sprintf("primary corpus failed, using %s", strategy.name),
				primaryErr,
			).WithUserMessage(
				fmt.Sprintf("Warning: could not load the main corpus, using %s instead.\n\nSome terms may be missing. To fix this:\n- Check the corpus file at '%s'\n- Run 'hybridrank build' to check that it loads\n- Restore from a backup if available", strategy.name, primaryPath),
			).WithContext("fallback_strategy", strategy.name).
				WithContext("primary_path", primaryPath).
				WithSuggestions(
					"Run 'hybridrank build' to check that the corpus loads",
					"Check if the corpus file exists and is readable",
					"Restore from a backup if available",
				)

			fmt.Printf("Warning: %s\n", recoveryErr.Error())
			return rows, nil
		}
	}

	return nil, errors.NewAppError(
		errors.ErrorTypeCorpus,
		"all corpus loading strategies failed",
		primaryErr,
	).WithUserMessage(
		"Failed to load any corpus. hybridrank cannot build an index without one.\n\nPlease:\n- Check the corpus file exists\n- Create a YAML corpus file at the configured path\n- Ensure you have proper file permissions",
	).WithSuggestions(
		"Create a YAML corpus file at the configured path",
		"Check file permissions on the corpus directory",
		"Verify the corpus file is not corrupted",
	)
}

// loadWithRetry attempts to load the corpus with exponential backoff retry.
func (cr *CorpusRecovery) loadWithRetry(primaryPath, personalPath string) ([]hybridrank.Row, error) {
	var lastErr error

	for attempt := 1; attempt <= cr.retryConfig.MaxAttempts; attempt++ {
		rows, err := corpus.LoadWithPersonal(primaryPath, personalPath)
		if err == nil {
			return rows, nil
		}

		lastErr = err

		if !cr.shouldRetry(err) {
			break
		}

		if attempt < cr.retryConfig.MaxAttempts {
			time.Sleep(cr.calculateDelay(attempt))
		}
	}

	return nil, lastErr
}

// shouldRetry determines if an error is worth retrying.
func (cr *CorpusRecovery) shouldRetry(err error) bool {
	if os.IsNotExist(err) || os.IsPermission(err) {
		return false
	}

	if appErr, ok := err.(*errors.AppError); ok {
		switch appErr.Type {
		case errors.ErrorTypePermission, errors.ErrorTypeValidation:
			return false
		}
	}

	return true
}

// calculateDelay calculates the delay for exponential backoff.
func (cr *CorpusRecovery) calculateDelay(attempt int) time.Duration {
	delay := float64(cr.retryConfig.BaseDelay) * math.Pow(cr.retryConfig.BackoffFactor, float64(attempt-1))

	if delay > float64(cr.retryConfig.MaxDelay) {
		delay = float64(cr.retryConfig.MaxDelay)
	}

	return time.Duration(delay)
}

// loadEmbeddedCorpus returns a small built-in corpus of filesystem
// operations as a fallback.
func (cr *CorpusRecovery) loadEmbeddedCorpus() ([]hybridrank.Row, error) {
	return []hybridrank.Row{
		{Display: "list directory", Aliases: []string{"ls", "dir", "list files"}},
		{Display: "change directory", Aliases: []string{"cd", "navigate"}},
		{Display: "print working directory", Aliases: []string{"pwd", "current directory"}},
		{Display: "create directory", Aliases: []string{"mkdir", "make folder"}},
		{Display: "remove files", Aliases: []string{"rm", "del", "delete"}},
		{Display: "copy files", Aliases: []string{"cp", "copy"}},
		{Display: "move files", Aliases: []string{"mv", "move", "rename"}},
	}, nil
}

// loadBackupCorpus attempts to load from a sibling ".backup" file.
func (cr *CorpusRecovery) loadBackupCorpus(primaryPath string) ([]hybridrank.Row, error) {
	backupPath := primaryPath + ".backup"

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("backup corpus not found at %s", backupPath)
	}

	return corpus.Load(backupPath)
}

// createMinimalCorpus creates a minimal corpus with just enough entries to
// clear Build's row-count floor.
func (cr *CorpusRecovery) createMinimalCorpus() ([]hybridrank.Row, error) {
	return []hybridrank.Row{
		{Display: "help"},
		{Display: "hybridrank build"},
	}, nil
}

// IndexRecovery handles index-build failures with graceful degradation.
type IndexRecovery struct{}

// NewIndexRecovery creates a new index recovery instance.
func NewIndexRecovery() *IndexRecovery {
	return &IndexRecovery{}
}

// BuildWithFallback builds an index from rows, padding with built-in
// defaults if rows alone can't satisfy Build's minimum row count.
func (ir *IndexRecovery) BuildWithFallback(rows []hybridrank.Row, cfg hybridrank.BuildConfig) (*hybridrank.Index, error) {
	ix, err := hybridrank.Build(rows, cfg)
	if err == nil {
		return ix, nil
	}

	padded := make([]hybridrank.Row, 0, len(rows)+2)
	padded = append(padded, rows...)
	padded = append(padded, hybridrank.Row{Display: "help"}, hybridrank.Row{Display: "hybridrank build"})

	if ix, paddedErr := hybridrank.Build(padded, cfg); paddedErr == nil {
		fmt.Println("Warning: corpus had too few entries, padded with built-in defaults")
		return ix, nil
	}

	return nil, errors.NewAppError(
		errors.ErrorTypeQuery,
		"failed to build index even with fallback padding",
		err,
	).WithUserMessage(
		"hybridrank could not build a usable index from the given corpus.",
	).WithSuggestions(
		"Add at least two entries to the corpus",
		"Check the gram size is at least 2",
		"Verify the corpus file was loaded correctly",
	)
}
