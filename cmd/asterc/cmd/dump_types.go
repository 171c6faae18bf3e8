package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/asterlang/aster/internal/fixtures"
	"github.com/asterlang/aster/internal/semantic"
)

var dumpTypesCmd = &cobra.Command{
	Use:   "dump-types <fixture>",
	Short: "Print the serialize() form of every resolved class/interface/variant/enum",
	Args:  cobra.ExactArgs(1),
	RunE:  runDumpTypes,
}

func init() {
	rootCmd.AddCommand(dumpTypesCmd)
}

func runDumpTypes(cmd *cobra.Command, args []string) error {
	pkg, ok := fixtures.Get(args[0])
	if !ok {
		return fmt.Errorf("no such fixture %q (see asterc list-fixtures)", args[0])
	}

	a := semantic.NewAnalyzer()
	a.SetStrict(strict)
	handle := a.AnalyzeProgram(pkg)
	if handle.HasErrors() {
		for _, d := range handle.Errors() {
			fmt.Printf("error: %s at %s\n", d.Message, d.Pos.String())
		}
		return fmt.Errorf("%d error(s), not dumping types", len(handle.Errors()))
	}

	var lines []string
	for name, ct := range a.ClassTypes() {
		lines = append(lines, fmt.Sprintf("class %s: %s", name, ct.Serialize()))
	}
	for name, it := range a.InterfaceTypes() {
		lines = append(lines, fmt.Sprintf("interface %s: %s", name, it.Serialize()))
	}
	for name, vt := range a.VariantTypes() {
		lines = append(lines, fmt.Sprintf("variant %s: %s", name, vt.Serialize()))
	}
	for name, et := range a.EnumTypes() {
		lines = append(lines, fmt.Sprintf("enum %s: %s", name, et.Serialize()))
	}
	for name, st := range a.StringEnumTypes() {
		lines = append(lines, fmt.Sprintf("string-enum %s: %s", name, st.Serialize()))
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Println(l)
	}

	for name, instances := range a.GenericFunctionInstances() {
		for _, fn := range instances {
			fmt.Printf("generic-function %s: %s\n", name, fn.Serialize())
		}
	}
	for name, instances := range a.GenericMethodInstances() {
		for _, fn := range instances {
			fmt.Printf("generic-method %s: %s\n", name, fn.Serialize())
		}
	}

	return nil
}
