// Command listctl exercises arena-backed lists: it runs the push/pop
// walkthrough, probes how many nodes fit an arena, and saves or restores
// list snapshots.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
