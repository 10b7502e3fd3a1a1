// Package pkg provides the core libraries for daxport workflow rendering.
//
// # Overview
//
// daxport converts workflow dependency graphs into the abstract DAG XML
// format consumed by scientific workflow planners. The pkg directory is
// organized into five main areas:
//
//  1. [workflow] - The in-memory graph model (vertices, edges, validation)
//  2. [io] - Serialization (JSON graph format, TOML manifests)
//  3. [render] - Document rendering (DAG XML, DOT/SVG/PNG previews)
//  4. [cache] / [store] - Infrastructure (render caching, workflow storage)
//  5. [errors] / [observability] / [buildinfo] - Ambient support packages
//
// # Architecture
//
// The typical data flow through daxport:
//
//	JSON graph / TOML manifest
//	         ↓
//	    [io] package (decode + validate structure)
//	         ↓
//	    [workflow] package (graph model, cycle detection)
//	         ↓
//	    [render/dax] or [render/dot] (document generation)
//	         ↓
//	    XML / DOT / SVG / PNG output
//
// # Quick Start
//
// Build a graph and render it as the abstract DAG document:
//
//	import (
//	    "os"
//	    "github.com/pegflow/daxport/pkg/render/dax"
//	    "github.com/pegflow/daxport/pkg/workflow"
//	)
//
//	g := workflow.New(nil)
//	g.AddVertex(workflow.Vertex{ID: "extract"})
//	g.AddVertex(workflow.Vertex{ID: "load"})
//	g.AddEdge("extract", "load")
//
//	err := dax.Write(g, os.Stdout, dax.Options{})
//
// # Main Packages
//
// [workflow] - Directed graph of jobs with declared input and output
// artifacts. Iteration order is part of the contract: vertices and edges
// are always visited in insertion order.
//
// [io] - The canonical JSON serialization and the hand-written TOML
// manifest format, with converters in both directions.
//
// [render/dax] - The abstract DAG XML renderer. One job element per
// vertex, one inverted child/parent block per edge.
//
// [render/dot] - Graphviz previews of the workflow structure.
//
// [cache] - Byte caches for rendered documents (memory, file, Redis, null).
//
// [store] - Named workflow document storage (memory, MongoDB) for the
// HTTP service.
//
// [workflow]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/workflow
// [io]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/io
// [render]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/render
// [render/dax]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/render/dax
// [render/dot]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/render/dot
// [cache]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/cache
// [store]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/store
// [errors]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/errors
// [observability]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/pegflow/daxport/pkg/buildinfo
package pkg
