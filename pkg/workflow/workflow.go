package workflow

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidVertexID is returned by [Graph.AddVertex] when the vertex ID
	// is empty. All vertices must have non-empty identifiers.
	ErrInvalidVertexID = errors.New("vertex ID must not be empty")

	// ErrDuplicateVertexID is returned by [Graph.AddVertex] when a vertex with
	// the same ID already exists in the graph. Vertex IDs must be unique.
	ErrDuplicateVertexID = errors.New("duplicate vertex ID")

	// ErrUnknownSourceVertex is returned by [Graph.AddEdge] when the from
	// vertex does not exist in the graph.
	ErrUnknownSourceVertex = errors.New("unknown source vertex")

	// ErrUnknownTargetVertex is returned by [Graph.AddEdge] when the to
	// vertex does not exist in the graph.
	ErrUnknownTargetVertex = errors.New("unknown target vertex")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// carries a nil endpoint or references a vertex that is no longer part
	// of the graph. This indicates graph corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a cycle is
	// detected. Workflows must be acyclic to have a valid execution order.
	// Cycles are detected using depth-first search with white/gray/black
	// coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to the graph.
// It is commonly used to carry a workflow name or description through
// import/export round trips. Metadata maps are never nil after New.
type Metadata map[string]any

// Artifact is a named data file consumed or produced by a task.
// Size and location are not tracked; schedulers resolve those downstream.
type Artifact struct {
	Name string
}

// Task is the unit of work associated with a vertex. Inputs and Outputs
// keep their declaration order, which is preserved verbatim by exporters.
type Task struct {
	Inputs  []Artifact
	Outputs []Artifact
}

// Vertex represents one job in the workflow.
//
// The zero value is not usable - ID must be set before adding to a Graph.
type Vertex struct {
	ID    string // Unique identifier (stable job id in exports)
	Label string // Optional display label (falls back to ID)
	Task  Task   // Data artifacts this job reads and writes
}

// DisplayLabel returns the label if set, otherwise the ID.
// Exporters use this to guarantee every job has a non-empty name.
func (v *Vertex) DisplayLabel() string {
	if v.Label != "" {
		return v.Label
	}
	return v.ID
}

// Edge represents a directed execution-order constraint: From must finish
// before To may start. Endpoints are vertex references and are nullable at
// the type level; renderers treat a nil endpoint as a contract breach.
type Edge struct {
	From *Vertex
	To   *Vertex
}

// Graph is a workflow dependency graph with deterministic iteration order.
// Vertices and edges are returned in insertion order, which exporters rely
// on to produce stable documents.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	vertices []*Vertex
	edges    []Edge
	index    map[string]*Vertex
	outgoing map[string][]string // vertexID -> successor IDs
	incoming map[string][]string // vertexID -> predecessor IDs
	meta     Metadata
}

// New creates an empty Graph with optional graph-level metadata.
// The metadata parameter can be nil, in which case an empty map is created.
func New(meta Metadata) *Graph {
	if meta == nil {
		meta = Metadata{}
	}
	return &Graph{
		index:    make(map[string]*Vertex),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		meta:     meta,
	}
}

// Meta returns the graph-level metadata map.
// The returned map is never nil and can be safely modified.
func (g *Graph) Meta() Metadata { return g.meta }

// AddVertex adds a vertex to the graph, preserving insertion order.
// Returns ErrInvalidVertexID if the vertex ID is empty, or
// ErrDuplicateVertexID if a vertex with the same ID already exists.
// The stored vertex is returned so callers can hold a reference for
// constructing edges.
func (g *Graph) AddVertex(v Vertex) (*Vertex, error) {
	if v.ID == "" {
		return nil, ErrInvalidVertexID
	}
	if _, exists := g.index[v.ID]; exists {
		return nil, ErrDuplicateVertexID
	}
	vertex := &v
	g.vertices = append(g.vertices, vertex)
	g.index[vertex.ID] = vertex
	return vertex, nil
}

// AddEdge adds a directed edge between two existing vertices.
// Returns ErrUnknownSourceVertex if the from vertex doesn't exist, or
// ErrUnknownTargetVertex if the to vertex doesn't exist.
//
// AddEdge does not check for cycles - use Validate after building the
// graph. Multiple edges between the same vertices are allowed (though
// unusual in workflow graphs).
func (g *Graph) AddEdge(from, to string) error {
	src, ok := g.index[from]
	if !ok {
		return ErrUnknownSourceVertex
	}
	dst, ok := g.index[to]
	if !ok {
		return ErrUnknownTargetVertex
	}
	g.edges = append(g.edges, Edge{From: src, To: dst})
	g.outgoing[from] = append(g.outgoing[from], to)
	g.incoming[to] = append(g.incoming[to], from)
	return nil
}

// Vertices returns all vertices in insertion order.
// The returned slice is a copy, but it contains pointers to the actual
// vertex structs, so modifications to a vertex affect the graph.
func (g *Graph) Vertices() []*Vertex { return slices.Clone(g.vertices) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Vertex returns the vertex with the given ID and true, or nil and false
// if not found.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.index[id]
	return v, ok
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Successors returns the IDs of vertices this vertex has edges to.
// Returns nil if the vertex has none or doesn't exist. The returned slice
// should not be modified - use it as a read-only view.
func (g *Graph) Successors(id string) []string { return g.outgoing[id] }

// Predecessors returns the IDs of vertices that have edges to this vertex.
// Returns nil if the vertex has none or doesn't exist. The returned slice
// should not be modified - use it as a read-only view.
func (g *Graph) Predecessors(id string) []string { return g.incoming[id] }

// Sources returns vertices with no incoming edges (workflow entry points),
// in insertion order. Returns nil for an empty graph.
func (g *Graph) Sources() []*Vertex {
	var sources []*Vertex
	for _, v := range g.vertices {
		if len(g.incoming[v.ID]) == 0 {
			sources = append(sources, v)
		}
	}
	return sources
}

// Sinks returns vertices with no outgoing edges (terminal jobs), in
// insertion order. Returns nil for an empty graph.
func (g *Graph) Sinks() []*Vertex {
	var sinks []*Vertex
	for _, v := range g.vertices {
		if len(g.outgoing[v.ID]) == 0 {
			sinks = append(sinks, v)
		}
	}
	return sinks
}

// Validate checks graph integrity and returns nil if valid.
// It verifies two constraints:
//
//  1. All edges reference non-nil vertices that are part of the graph
//  2. The graph is acyclic (no directed cycles exist)
//
// Returns ErrInvalidEdgeEndpoint or ErrGraphHasCycle. Use this before
// export when the graph was assembled from untrusted input.
//
// Cycle detection runs in O(V+E) time using depth-first search.
func (g *Graph) Validate() error {
	if err := g.validateEdgeConsistency(); err != nil {
		return err
	}
	return g.detectCycles()
}

func (g *Graph) validateEdgeConsistency() error {
	for _, e := range g.edges {
		if e.From == nil || e.To == nil {
			return ErrInvalidEdgeEndpoint
		}
		if g.index[e.From.ID] != e.From || g.index[e.To.ID] != e.To {
			return ErrInvalidEdgeEndpoint
		}
	}
	return nil
}

func (g *Graph) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.vertices))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, succ := range g.outgoing[id] {
			switch color[succ] {
			case white:
				dfs(succ)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for _, v := range g.vertices {
		if color[v.ID] == white {
			dfs(v.ID)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// VertexIDs extracts the ID from each vertex in a slice.
// Returns a new slice containing the IDs in the same order as the input.
func VertexIDs(vertices []*Vertex) []string {
	ids := make([]string, len(vertices))
	for i, v := range vertices {
		ids[i] = v.ID
	}
	return ids
}
