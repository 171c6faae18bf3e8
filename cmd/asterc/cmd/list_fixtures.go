package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asterlang/aster/internal/fixtures"
)

var listFixturesCmd = &cobra.Command{
	Use:   "list-fixtures",
	Short: "List the built-in fixture programs asterc can check or dump-types against",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range fixtures.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listFixturesCmd)
}
