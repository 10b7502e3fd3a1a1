// Package workflow provides the directed acyclic graph (DAG) model that
// daxport projects into scheduler interchange documents.
//
// # Overview
//
// A workflow is a set of jobs (vertices) connected by execution-order
// constraints (edges). Each vertex carries a unit-of-work descriptor
// listing the data artifacts the job reads and writes. The model is a
// plain read-only projection source: exporters walk it, they never
// mutate it.
//
// Iteration order is the contract. Vertices and edges come back in the
// order they were added, and every exporter in this repository preserves
// that order verbatim so that the same graph always produces the same
// document.
//
// # Basic Usage
//
// Create a graph with [New], add vertices with [Graph.AddVertex], and
// edges with [Graph.AddEdge]. Vertex IDs must be unique and edges can
// only connect existing vertices:
//
//	g := workflow.New(nil)
//	g.AddVertex(workflow.Vertex{ID: "preprocess", Task: workflow.Task{
//	    Inputs:  []workflow.Artifact{{Name: "raw.dat"}},
//	    Outputs: []workflow.Artifact{{Name: "clean.dat"}},
//	}})
//	g.AddVertex(workflow.Vertex{ID: "analyze"})
//	g.AddEdge("preprocess", "analyze")
//
// Use [Graph.Validate] to verify edge integrity and acyclicity before
// exporting a graph assembled from untrusted input. Validation is a
// caller tool: exporters themselves only enforce the non-nil edge
// endpoint precondition.
package workflow
