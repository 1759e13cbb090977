package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders a result as stable text for golden comparison.
//
// Layout:
//
//	scenario: <name>
//	trace:
//	  <seq> <op> [<input>] -> <outcome>
//	final:
//	  <position> #<id> <name>
//	renderer: invalidations=<n> scrolls=[...]
func Snapshot(name string, r *Result) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "scenario: %s\n", name)

	b.WriteString("trace:\n")
	for _, ev := range r.Trace {
		fmt.Fprintf(&b, "  %d %s", ev.Seq, ev.Op)
		if ev.Input != "" {
			fmt.Fprintf(&b, " %s", ev.Input)
		}
		fmt.Fprintf(&b, " -> %s\n", ev.Outcome)
	}

	b.WriteString("final:\n")
	for i, h := range r.Final {
		fmt.Fprintf(&b, "  %d #%d %s\n", i, h.ID, h.Name)
	}

	fmt.Fprintf(&b, "renderer: invalidations=%d scrolls=%v\n", r.Invalidations, r.Scrolls)
	return []byte(b.String())
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Snapshot(name, result))
}
