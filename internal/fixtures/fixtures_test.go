package fixtures

import (
	"fmt"
	"sort"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/asterlang/aster/internal/semantic"
	"github.com/asterlang/aster/internal/types"
)

// TestFixturesAnalyzeCleanly runs every registered fixture through a fresh
// Analyzer and snapshots its resolved-type surface: the serialize() form of
// every class the fixture declares, plus every monomorphized
// generic instance a call site produced. A change here either means a
// fixture was edited on purpose (refresh with UPDATE_SNAPS=true) or the
// resolver's behavior drifted.
func TestFixturesAnalyzeCleanly(t *testing.T) {
	for _, name := range Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			pkg, ok := Get(name)
			if !ok {
				t.Fatalf("fixture %q not registered", name)
			}

			a := semantic.NewAnalyzer()
			handle := a.AnalyzeProgram(pkg)
			if handle.HasErrors() {
				t.Fatalf("fixture %q produced diagnostics: %v", name, handle.Errors())
			}

			snaps.MatchSnapshot(t, fmt.Sprintf("%s_classes", name), serializedClasses(a))
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_generic_functions", name), genericInstanceSummary(a.GenericFunctionInstances()))
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_generic_methods", name), genericInstanceSummary(a.GenericMethodInstances()))
		})
	}
}

func serializedClasses(a *semantic.Analyzer) []string {
	var out []string
	for name, ct := range a.ClassTypes() {
		out = append(out, name+" -> "+ct.Serialize())
	}
	sort.Strings(out)
	return out
}

func genericInstanceSummary(instances map[string][]*types.FunctionType) []string {
	var out []string
	for name, fns := range instances {
		for _, fn := range fns {
			out = append(out, name+" -> "+fn.Serialize())
		}
	}
	sort.Strings(out)
	return out
}
