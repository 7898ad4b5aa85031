// hybridrank is a command-line tool over an in-memory hybrid
// edit-distance/n-gram ranking engine. It features:
//   - Fused edit-distance and n-gram scoring over a YAML corpus
//   - Typo-tolerant "did you mean?" suggestions
//   - An interactive result browser
//   - Query history and caching
//
// Usage:
//
//	hybridrank "comit"
//	hybridrank search "confgiure" --limit 10
//	hybridrank browse "find"
package main

import (
	"fmt"
	"os"

	"github.com/mira-tools/hybridrank/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
