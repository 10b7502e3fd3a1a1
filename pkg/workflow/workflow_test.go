package workflow

import (
	"errors"
	"testing"
)

func TestAddVertex(t *testing.T) {
	tests := []struct {
		name    string
		add     []Vertex
		wantErr error
	}{
		{
			name: "Simple",
			add:  []Vertex{{ID: "a"}, {ID: "b"}},
		},
		{
			name:    "EmptyID",
			add:     []Vertex{{ID: ""}},
			wantErr: ErrInvalidVertexID,
		},
		{
			name:    "Duplicate",
			add:     []Vertex{{ID: "a"}, {ID: "a"}},
			wantErr: ErrDuplicateVertexID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(nil)
			var err error
			for _, v := range tt.add {
				_, err = g.AddVertex(v)
				if err != nil {
					break
				}
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddVertex error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantErr  error
	}{
		{name: "Valid", from: "a", to: "b"},
		{name: "UnknownSource", from: "x", to: "b", wantErr: ErrUnknownSourceVertex},
		{name: "UnknownTarget", from: "a", to: "x", wantErr: ErrUnknownTargetVertex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(nil)
			g.AddVertex(Vertex{ID: "a"})
			g.AddVertex(Vertex{ID: "b"})

			err := g.AddEdge(tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddEdge(%q, %q) error = %v, want %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestIterationOrder(t *testing.T) {
	g := New(nil)
	ids := []string{"zeta", "alpha", "mid"}
	for _, id := range ids {
		if _, err := g.AddVertex(Vertex{ID: id}); err != nil {
			t.Fatalf("AddVertex(%q): %v", id, err)
		}
	}
	g.AddEdge("mid", "alpha")
	g.AddEdge("zeta", "mid")

	got := VertexIDs(g.Vertices())
	for i, id := range ids {
		if got[i] != id {
			t.Errorf("Vertices()[%d] = %q, want %q (insertion order must be preserved)", i, got[i], id)
		}
	}

	edges := g.Edges()
	if edges[0].From.ID != "mid" || edges[1].From.ID != "zeta" {
		t.Errorf("Edges() not in insertion order: got %s, %s", edges[0].From.ID, edges[1].From.ID)
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		name   string
		vertex Vertex
		want   string
	}{
		{name: "LabelSet", vertex: Vertex{ID: "j1", Label: "Preprocess"}, want: "Preprocess"},
		{name: "LabelEmpty", vertex: Vertex{ID: "j1"}, want: "j1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vertex.DisplayLabel(); got != tt.want {
				t.Errorf("DisplayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSourcesAndSinks(t *testing.T) {
	g := New(nil)
	for _, id := range []string{"a", "b", "c"} {
		g.AddVertex(Vertex{ID: id})
	}
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	if sources := VertexIDs(g.Sources()); len(sources) != 1 || sources[0] != "a" {
		t.Errorf("Sources() = %v, want [a]", sources)
	}
	if sinks := VertexIDs(g.Sinks()); len(sinks) != 1 || sinks[0] != "c" {
		t.Errorf("Sinks() = %v, want [c]", sinks)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Graph
		wantErr error
	}{
		{
			name: "Empty",
			build: func() *Graph {
				return New(nil)
			},
		},
		{
			name: "Chain",
			build: func() *Graph {
				g := New(nil)
				g.AddVertex(Vertex{ID: "a"})
				g.AddVertex(Vertex{ID: "b"})
				g.AddEdge("a", "b")
				return g
			},
		},
		{
			name: "Cycle",
			build: func() *Graph {
				g := New(nil)
				g.AddVertex(Vertex{ID: "a"})
				g.AddVertex(Vertex{ID: "b"})
				g.AddEdge("a", "b")
				g.AddEdge("b", "a")
				return g
			},
			wantErr: ErrGraphHasCycle,
		},
		{
			name: "SelfLoop",
			build: func() *Graph {
				g := New(nil)
				g.AddVertex(Vertex{ID: "a"})
				g.AddEdge("a", "a")
				return g
			},
			wantErr: ErrGraphHasCycle,
		},
		{
			name: "NilEndpoint",
			build: func() *Graph {
				g := New(nil)
				v, _ := g.AddVertex(Vertex{ID: "a"})
				g.edges = append(g.edges, Edge{From: v, To: nil})
				return g
			},
			wantErr: ErrInvalidEdgeEndpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEdgesReturnsCopy(t *testing.T) {
	g := New(nil)
	g.AddVertex(Vertex{ID: "a"})
	g.AddVertex(Vertex{ID: "b"})
	g.AddEdge("a", "b")

	edges := g.Edges()
	edges[0] = Edge{}

	if got := g.Edges(); got[0].From == nil || got[0].From.ID != "a" {
		t.Error("mutating the slice returned by Edges() must not affect the graph")
	}
}
