package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/pegflow/daxport/pkg/workflow"
)

// Options configures DOT rendering.
type Options struct {
	// Detailed includes input/output artifact names in node labels.
	// When false, only the job's display label is shown.
	Detailed bool
}

// ToDOT converts a workflow graph to Graphviz DOT format for quick visual
// inspection before the DAX document is handed to a scheduler. The
// resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *workflow.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph workflow {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", v.ID, fmtLabel(v, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From.ID, e.To.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(v *workflow.Vertex, detailed bool) string {
	label := v.DisplayLabel()
	if !detailed {
		return label
	}

	var parts []string
	for _, in := range v.Task.Inputs {
		parts = append(parts, "< "+in.Name)
	}
	for _, out := range v.Task.Outputs {
		parts = append(parts, "> "+out.Name)
	}
	if len(parts) == 0 {
		return label
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
