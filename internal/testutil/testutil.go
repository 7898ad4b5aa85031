// Package testutil provides shared testing infrastructure for hybridrank:
// sample rows and corpora, a YAML corpus writer, temp-dir helpers, and
// random data generators for fuzz/stress tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mira-tools/hybridrank/internal/hybridrank"
)

// Row is an alias for hybridrank.Row, kept for readability in test code
// that otherwise has no reason to import the hybridrank package directly.
type Row = hybridrank.Row

// GetSampleRows returns a small, varied set of rows for testing.
func GetSampleRows() []Row {
	return []Row{
		{Display: "copy files", Aliases: []string{"copy", "duplicate"}},
		{Display: "copy files and directories", Aliases: []string{"cp", "duplicate"}},
		{Display: "network configuration", Aliases: []string{"ipconfig", "ip", "network"}},
	}
}

// CreateTestCorpus wraps the given rows with no further processing; it
// exists purely for symmetry with CreateDefaultTestCorpus/CreateMinimalTestCorpus.
func CreateTestCorpus(rows []Row) []Row {
	return rows
}

// CreateLargeTestCorpus creates count rows by cycling through the sample
// rows and appending a variant suffix to each display name.
func CreateLargeTestCorpus(count int) []Row {
	sample := GetSampleRows()
	rows := make([]Row, count)

	for i := 0; i < count; i++ {
		base := sample[i%len(sample)]
		rows[i] = Row{
			Display: fmt.Sprintf("%s variant-%d", base.Display, i),
			Aliases: base.Aliases,
		}
	}

	return rows
}

// CreateDefaultTestCorpus returns a comprehensive corpus covering several
// categories (version control, filesystem, archiving) for general-purpose
// search tests.
func CreateDefaultTestCorpus() []Row {
	return []Row{
		{Display: "commit changes with message", Aliases: []string{"git commit", "version-control"}},
		{Display: "find text files in current directory", Aliases: []string{"find", "search"}},
		{Display: "create compressed tar archive", Aliases: []string{"tar", "compress", "gzip"}},
		{Display: "list txt files with details", Aliases: []string{"ls", "grep"}},
		{Display: "create directory with parents", Aliases: []string{"mkdir", "folder"}},
	}
}

// CreateMinimalTestCorpus returns the smallest corpus that still satisfies
// Build's two-row floor.
func CreateMinimalTestCorpus() []Row {
	return []Row{
		{Display: "test entry one"},
		{Display: "test entry two"},
	}
}

// CreateEmptyTestCorpus returns an empty row set, for exercising Build's
// InvalidConfig path.
func CreateEmptyTestCorpus() []Row {
	return []Row{}
}

// SaveCorpus marshals rows to the YAML shape corpus.Load expects and
// writes them to path, creating parent directories as needed.
func SaveCorpus(rows []Row, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	type entry struct {
		Display string             `yaml:"display"`
		Aliases []string           `yaml:"aliases,omitempty"`
		Weights map[string]float64 `yaml:"weights,omitempty"`
	}

	entries := make([]entry, len(rows))
	for i, row := range rows {
		e := entry{Display: row.Display, Aliases: row.Aliases}
		if len(row.Weights) > 0 {
			e.Weights = make(map[string]float64, len(row.Weights))
			if w, ok := row.Weights[0]; ok {
				e.Weights["display"] = w
			}
			for j, alias := range row.Aliases {
				if w, ok := row.Weights[j+1]; ok {
					e.Weights[alias] = w
				}
			}
		}
		entries[i] = e
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// CreateTempDir creates a temporary directory for testing and returns it
// along with a cleanup function.
func CreateTempDir() (string, func()) {
	tempDir, err := os.MkdirTemp("", "hybridrank-test-*")
	if err != nil {
		panic(err)
	}

	cleanup := func() {
		os.RemoveAll(tempDir)
	}

	return tempDir, cleanup
}
