// Command lvclique enumerates maximal cliques of an edge-list graph and
// analyses the viewership of the members of every large clique.
//
// Usage:
//
//	lvclique run --edges musae_ENGB_edges.csv --targets musae_ENGB_target.csv --min-size 10
//	lvclique generate --kind random --n 200 --p 0.1 --seed 7 --out edges.csv
//	lvclique runs list
//	lvclique runs show <id>
package main

import (
	"fmt"
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvclique:", err)
		os.Exit(1)
	}
}
