// Command asterc drives the semantic analyzer over the fixture programs
// registered in internal/fixtures: running full-program analysis, listing
// what's available, and dumping the resolved type lattice, all without a
// surface-syntax front end.
package main

import (
	"fmt"
	"os"

	"github.com/asterlang/aster/cmd/asterc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
