package dot

import (
	"strings"
	"testing"

	"github.com/pegflow/daxport/pkg/workflow"
)

func buildGraph(t *testing.T) *workflow.Graph {
	t.Helper()
	g := workflow.New(nil)
	g.AddVertex(workflow.Vertex{ID: "extract", Label: "Extract", Task: workflow.Task{
		Outputs: []workflow.Artifact{{Name: "raw.dat"}},
	}})
	g.AddVertex(workflow.Vertex{ID: "load", Task: workflow.Task{
		Inputs: []workflow.Artifact{{Name: "raw.dat"}},
	}})
	g.AddEdge("extract", "load")
	return g
}

func TestToDOT(t *testing.T) {
	out := ToDOT(buildGraph(t), Options{})

	for _, want := range []string{
		"digraph workflow {",
		`"extract" [label="Extract"];`,
		`"load" [label="load"];`,
		`"extract" -> "load";`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	out := ToDOT(buildGraph(t), Options{Detailed: true})

	if !strings.Contains(out, `"extract" [label="Extract\n> raw.dat"];`) {
		t.Errorf("detailed label missing output artifact:\n%s", out)
	}
	if !strings.Contains(out, `"load" [label="load\n< raw.dat"];`) {
		t.Errorf("detailed label missing input artifact:\n%s", out)
	}
}

func TestToDOTEmpty(t *testing.T) {
	out := ToDOT(workflow.New(nil), Options{})
	if !strings.HasPrefix(out, "digraph workflow {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("empty graph DOT malformed:\n%s", out)
	}
}
