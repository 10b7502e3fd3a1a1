package io

import (
	"github.com/pegflow/daxport/pkg/errors"
	"github.com/pegflow/daxport/pkg/workflow"
)

// Graph is the canonical serialization format for workflow graphs.
// Used for CLI import/export, HTTP payloads, and store documents.
//
// The format is human-readable and designed for round-trip fidelity:
// import → export → re-import produces identical results, including
// job and dependency order.
type Graph struct {
	Name         string       `json:"name,omitempty" bson:"name,omitempty"`
	Jobs         []Job        `json:"jobs" bson:"jobs"`
	Dependencies []Dependency `json:"dependencies" bson:"dependencies"`
}

// Job is the serialized form of a workflow vertex.
type Job struct {
	ID      string   `json:"id" bson:"id"`
	Label   string   `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
	Inputs  []string `json:"inputs,omitempty" bson:"inputs,omitempty"`
	Outputs []string `json:"outputs,omitempty" bson:"outputs,omitempty"`
}

// Dependency is a directed execution-order constraint between two jobs.
type Dependency struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// FromWorkflow converts a workflow graph to its serialization format.
// Jobs and dependencies keep the graph's native order.
func FromWorkflow(g *workflow.Graph) Graph {
	out := Graph{
		Jobs:         make([]Job, 0, g.VertexCount()),
		Dependencies: make([]Dependency, 0, g.EdgeCount()),
	}
	if name, ok := g.Meta()["name"].(string); ok {
		out.Name = name
	}

	for _, v := range g.Vertices() {
		out.Jobs = append(out.Jobs, Job{
			ID:      v.ID,
			Label:   v.Label,
			Inputs:  artifactNames(v.Task.Inputs),
			Outputs: artifactNames(v.Task.Outputs),
		})
	}
	for _, e := range g.Edges() {
		out.Dependencies = append(out.Dependencies, Dependency{From: e.From.ID, To: e.To.ID})
	}
	return out
}

// ToWorkflow converts a serialized Graph into a workflow graph.
// Returns a coded INVALID_GRAPH error if a job id is missing or
// duplicated, or if a dependency references an unknown job.
func ToWorkflow(doc Graph) (*workflow.Graph, error) {
	meta := workflow.Metadata{}
	if doc.Name != "" {
		meta["name"] = doc.Name
	}
	g := workflow.New(meta)

	for _, j := range doc.Jobs {
		if err := errors.ValidateJobID(j.ID); err != nil {
			return nil, err
		}
		v := workflow.Vertex{
			ID:    j.ID,
			Label: j.Label,
			Task: workflow.Task{
				Inputs:  artifacts(j.Inputs),
				Outputs: artifacts(j.Outputs),
			},
		}
		if _, err := g.AddVertex(v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "job %s", j.ID)
		}
	}

	for _, d := range doc.Dependencies {
		if err := g.AddEdge(d.From, d.To); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "dependency %s->%s", d.From, d.To)
		}
	}

	return g, nil
}

func artifactNames(as []workflow.Artifact) []string {
	if len(as) == 0 {
		return nil
	}
	names := make([]string, len(as))
	for i, a := range as {
		names[i] = a.Name
	}
	return names
}

func artifacts(names []string) []workflow.Artifact {
	if len(names) == 0 {
		return nil
	}
	as := make([]workflow.Artifact, len(names))
	for i, n := range names {
		as[i] = workflow.Artifact{Name: n}
	}
	return as
}
