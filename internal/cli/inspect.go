package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pegflow/daxport/pkg/io"
	"github.com/pegflow/daxport/pkg/workflow"
)

// newInspectCmd creates the inspect command for examining workflow graphs.
// It prints summary statistics and validation status, and can open an
// interactive job browser with --interactive.
func newInspectCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show workflow graph statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := io.Import(args[0])
			if err != nil {
				return err
			}
			if interactive {
				return runJobBrowser(g)
			}
			printGraphSummary(args[0], g)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse jobs in an interactive list")

	return cmd
}

// printGraphSummary prints statistics and validation status for a graph.
func printGraphSummary(input string, g *workflow.Graph) {
	name, _ := g.Meta()["name"].(string)
	if name == "" {
		name = input
	}

	fmt.Println(StyleTitle.Render(name))
	printNewline()

	printKeyValue("jobs", fmt.Sprintf("%d", g.VertexCount()))
	printKeyValue("dependencies", fmt.Sprintf("%d", g.EdgeCount()))
	printKeyValue("artifacts", fmt.Sprintf("%d", artifactCount(g)))
	printKeyValue("sources", joinIDs(g.Sources()))
	printKeyValue("sinks", joinIDs(g.Sinks()))

	printNewline()
	if err := g.Validate(); err != nil {
		printWarning("validation failed: %v", err)
	} else {
		printSuccess("Graph is consistent and acyclic")
	}
	printNextStep("Export it", "daxport export "+input)
}

// artifactCount counts declared input and output artifacts across all jobs.
func artifactCount(g *workflow.Graph) int {
	n := 0
	for _, v := range g.Vertices() {
		n += len(v.Task.Inputs) + len(v.Task.Outputs)
	}
	return n
}

// joinIDs formats a vertex list as a comma-separated id string.
func joinIDs(vs []*workflow.Vertex) string {
	if len(vs) == 0 {
		return "—"
	}
	out := ""
	for i, v := range vs {
		if i > 0 {
			out += ", "
		}
		out += v.ID
	}
	return out
}

// runJobBrowser opens the interactive bubbletea job list.
func runJobBrowser(g *workflow.Graph) error {
	model := NewJobListModel(g)
	_, err := tea.NewProgram(model).Run()
	return err
}
