// Package corpus loads (display, aliases, weights) rows from YAML files
// and converts them into hybridrank.Row values ready for Build.
package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mira-tools/hybridrank/internal/hybridrank"
)

// entry is the on-disk shape of one corpus row. Weights is optional and
// keyed by the literal alias text, with the reserved key "display" for the
// row's own display weight — any key not present defaults to 1.0, per
// hybridrank.Row.weightFor.
type entry struct {
	Display string             `yaml:"display"`
	Aliases []string           `yaml:"aliases"`
	Weights map[string]float64 `yaml:"weights"`
}

// Load reads a YAML corpus file — a top-level list of entries — and
// converts it to hybridrank.Row values.
func Load(filename string) ([]hybridrank.Row, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return toRows(entries), nil
}

// LoadWithPersonal loads the primary corpus file and appends rows from an
// optional personal overlay file. A missing personal file is not an error.
func LoadWithPersonal(primaryPath, personalPath string) ([]hybridrank.Row, error) {
	rows, err := Load(primaryPath)
	if err != nil {
		return nil, err
	}

	if personalPath == "" {
		return rows, nil
	}

	if _, err := os.Stat(personalPath); os.IsNotExist(err) {
		return rows, nil
	}

	personalRows, err := Load(personalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load personal corpus: %w", err)
	}

	return append(rows, personalRows...), nil
}

func toRows(entries []entry) []hybridrank.Row {
	rows := make([]hybridrank.Row, 0, len(entries))
	for _, e := range entries {
		row := hybridrank.Row{Display: e.Display, Aliases: e.Aliases}
		if len(e.Weights) > 0 {
			row.Weights = make(map[int]float64, len(e.Weights))
			if w, ok := e.Weights["display"]; ok {
				row.Weights[0] = w
			}
			for i, alias := range e.Aliases {
				if w, ok := e.Weights[alias]; ok {
					row.Weights[i+1] = w
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Size returns the number of rows a loaded corpus contains.
func Size(rows []hybridrank.Row) int {
	return len(rows)
}
