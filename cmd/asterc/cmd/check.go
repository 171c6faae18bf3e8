package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/asterlang/aster/internal/fixtures"
	"github.com/asterlang/aster/internal/semantic"
)

var checkCmd = &cobra.Command{
	Use:   "check <fixture>",
	Short: "Run the analyzer over a fixture and report its diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Pos      string `json:"pos"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	pkg, ok := fixtures.Get(args[0])
	if !ok {
		return fmt.Errorf("no such fixture %q (see asterc list-fixtures)", args[0])
	}

	a := semantic.NewAnalyzer()
	a.SetStrict(strict)
	handle := a.AnalyzeProgram(pkg)

	if asJSON {
		out := make([]jsonDiagnostic, len(handle.Diagnostics))
		for i, d := range handle.Diagnostics {
			out[i] = jsonDiagnostic{
				Severity: string(d.Severity),
				Code:     string(d.Code),
				Message:  d.Message,
				Pos:      d.Pos.String(),
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(handle.Diagnostics) == 0 {
		fmt.Println("no diagnostics")
		return nil
	}
	tw := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "SEVERITY\tCODE\tPOS\tMESSAGE")
	for _, d := range handle.Diagnostics {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Severity, d.Code, d.Pos.String(), d.Message)
	}
	tw.Flush()

	if handle.HasErrors() {
		return fmt.Errorf("%d error(s)", len(handle.Errors()))
	}
	return nil
}
