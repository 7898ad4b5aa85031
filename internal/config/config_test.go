package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxResults != 5 {
		t.Errorf("Expected MaxResults 5, got %d", cfg.MaxResults)
	}

	if cfg.GramSize != 3 {
		t.Errorf("Expected GramSize 3, got %d", cfg.GramSize)
	}

	if cfg.CacheEnabled != true {
		t.Error("Expected CacheEnabled to be true")
	}

	if cfg.CorpusPath != "assets/corpus.yml" {
		t.Errorf("Expected CorpusPath 'assets/corpus.yml', got '%s'", cfg.CorpusPath)
	}
}

func TestConfigValidateRejectsBadGramSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GramSize = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for GramSize < 2")
	}
}

func TestConfigValidateRejectsBadThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threshold = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for Threshold outside [0,1]")
	}
}

func TestGetCorpusPath(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "hybridrank-config-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testFile := filepath.Join(tmpDir, "test.yml")
	err = os.WriteFile(testFile, []byte("test"), 0644)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	cfg := &Config{
		CorpusPath: testFile,
		MaxResults: 5,
	}

	path := cfg.GetCorpusPath()
	if path != testFile {
		t.Errorf("Expected path '%s', got '%s'", testFile, path)
	}
}

func TestGetCorpusPathFallback(t *testing.T) {
	cfg := &Config{
		CorpusPath: "nonexistent.yml",
		MaxResults: 5,
	}

	path := cfg.GetCorpusPath()
	if path != "nonexistent.yml" {
		t.Errorf("Expected fallback to configured path, got '%s'", path)
	}
}

func TestEnsureConfigDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "hybridrank-config-dir-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configDir := filepath.Join(tmpDir, "config", "hybridrank")
	cfg := &Config{
		ConfigDir: configDir,
	}

	err = cfg.EnsureConfigDir()
	if err != nil {
		t.Errorf("EnsureConfigDir failed: %v", err)
	}

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Config directory was not created")
	}
}
