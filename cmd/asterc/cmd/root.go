package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set by build flags, the same pattern the teacher's CLI uses.
var Version = "0.1.0-dev"

var (
	strict bool
	asJSON bool
)

var rootCmd = &cobra.Command{
	Use:     "asterc",
	Short:   "Aster semantic analyzer driver",
	Version: Version,
	Long: `asterc runs the Aster semantic analyzer against built-in fixture
programs registered in internal/fixtures, for inspecting its diagnostics and
resolved type lattice without a surface-syntax parser.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "use strict (exact-shape) matching where analysis allows a choice")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON instead of text")
}
