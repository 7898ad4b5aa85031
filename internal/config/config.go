// Package config provides application configuration management.
//
// This package handles all configuration-related functionality including:
//   - Default configuration values
//   - Configuration validation
//   - Corpus path resolution with fallbacks
//   - User directory management
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds application configuration settings.
//
// Config manages all configurable aspects of the hybridrank CLI, including
// the corpus path, the ranking engine's gram size and match threshold, and
// caching preferences. It provides intelligent defaults and validation to
// ensure the application runs correctly across different environments.
type Config struct {
	// CorpusPath is the path to the YAML corpus file.
	CorpusPath string

	// PersonalCorpusPath is the path to the user's personal corpus overlay.
	PersonalCorpusPath string

	// MaxResults is the maximum number of search results to return.
	MaxResults int

	// GramSize is the n-gram width used to classify and index long terms.
	GramSize int

	// Threshold is the minimum raw per-term score a candidate must clear
	// before it is eligible for fusion into a display key's entry score.
	Threshold float64

	// CacheEnabled determines whether query result caching is active.
	CacheEnabled bool

	// ConfigDir is the directory where configuration files are stored.
	ConfigDir string
}

// DefaultConfig returns a new Config instance with sensible default values.
//
// This function automatically determines the user's home directory and
// creates appropriate paths for cross-platform compatibility.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	configDir := filepath.Join(homeDir, ".config", "hybridrank")

	return &Config{
		CorpusPath:         "assets/corpus.yml",
		PersonalCorpusPath: filepath.Join(configDir, "personal.yml"),
		MaxResults:         5,
		GramSize:           3,
		Threshold:          0,
		CacheEnabled:       true,
		ConfigDir:          configDir,
	}
}

// Validate checks if the configuration contains valid values.
//
// Returns an error if any validation fails, nil if all values are valid.
func (c *Config) Validate() error {
	if c.MaxResults <= 0 {
		return fmt.Errorf("MaxResults must be positive, got %d", c.MaxResults)
	}
	if c.MaxResults > 100 {
		return fmt.Errorf("MaxResults too large, got %d (max: 100)", c.MaxResults)
	}
	if c.GramSize < 2 {
		return fmt.Errorf("GramSize must be at least 2, got %d", c.GramSize)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("Threshold must be within [0,1], got %v", c.Threshold)
	}
	if c.CorpusPath == "" {
		return fmt.Errorf("CorpusPath cannot be empty")
	}
	return nil
}

// GetCorpusPath returns the path to the corpus file.
//
// This method implements intelligent path resolution with multiple fallback
// locations. It first tries the configured CorpusPath, then falls back to
// common installation locations in this order:
//  1. Configured path
//  2. System-wide installations (/usr/local/share, /usr/share)
//  3. Local development paths (assets/, internal/)
//
// If no file is found, it returns the originally configured path, allowing
// the calling code to handle the error appropriately.
func (c *Config) GetCorpusPath() string {
	if _, err := os.Stat(c.CorpusPath); err == nil {
		return c.CorpusPath
	}

	fallbacks := []string{
		"/usr/local/share/hybridrank/corpus.yml",
		"/usr/share/hybridrank/corpus.yml",
		"assets/corpus.yml",
		filepath.Join("assets", "corpus.yml"),
		"corpus.yml",
		filepath.Join("internal", "corpus", "corpus.yml"),
	}

	for _, path := range fallbacks {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return c.CorpusPath
}

// GetPersonalCorpusPath returns the path to the user's personal corpus
// overlay file.
func (c *Config) GetPersonalCorpusPath() string {
	return c.PersonalCorpusPath
}

// EnsureConfigDir creates the configuration directory if it doesn't exist.
//
// It's safe to call multiple times - if the directory already exists, no
// error is returned.
func (c *Config) EnsureConfigDir() error {
	const secureDirectoryMode = 0755
	return os.MkdirAll(c.ConfigDir, secureDirectoryMode)
}
