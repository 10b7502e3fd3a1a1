// Package render provides document rendering for workflow graphs.
//
// # Overview
//
// This package groups the renderers that turn a workflow graph into an
// output document:
//
//   - DAG XML documents (in [dax] subpackage)
//   - Graphviz previews (in [dot] subpackage)
//
// # DAG XML
//
// The [dax] subpackage writes the abstract DAG XML document consumed by
// scientific workflow planners. It is the primary output of daxport.
//
//	err := dax.Write(g, w, dax.Options{})
//
// # Previews
//
// The [dot] subpackage renders the same graph as a DOT description or, via
// Graphviz, as SVG and PNG images for quick structural checks.
//
//	src := dot.ToDOT(g, dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
//
// [dax]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/render/dax
// [dot]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/render/dot
package render
