package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pegflow/daxport/pkg/errors"
	"github.com/pegflow/daxport/pkg/workflow"
)

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantJobs  int
		wantEdges int
		wantCode  errors.Code
	}{
		{
			name:      "Simple",
			input:     `{"jobs":[{"id":"a"},{"id":"b"}],"dependencies":[{"from":"a","to":"b"}]}`,
			wantJobs:  2,
			wantEdges: 1,
		},
		{
			name:     "Empty",
			input:    `{"jobs":[],"dependencies":[]}`,
			wantJobs: 0,
		},
		{
			name:      "WithArtifacts",
			input:     `{"jobs":[{"id":"a","inputs":["x","y"],"outputs":["z"]}],"dependencies":[]}`,
			wantJobs:  1,
			wantEdges: 0,
		},
		{
			name:     "MissingID",
			input:    `{"jobs":[{"label":"nameless"}],"dependencies":[]}`,
			wantCode: errors.ErrCodeInvalidGraph,
		},
		{
			name:     "DuplicateID",
			input:    `{"jobs":[{"id":"a"},{"id":"a"}],"dependencies":[]}`,
			wantCode: errors.ErrCodeInvalidGraph,
		},
		{
			name:     "UnknownDependency",
			input:    `{"jobs":[{"id":"a"}],"dependencies":[{"from":"a","to":"ghost"}]}`,
			wantCode: errors.ErrCodeInvalidGraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadJSON(strings.NewReader(tt.input))
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("ReadJSON error = %v, want code %v", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadJSON: %v", err)
			}
			if g.VertexCount() != tt.wantJobs {
				t.Errorf("VertexCount() = %d, want %d", g.VertexCount(), tt.wantJobs)
			}
			if g.EdgeCount() != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), tt.wantEdges)
			}
		})
	}
}

func TestReadJSONMalformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Fatal("ReadJSON accepted malformed JSON")
	}
}

func TestRoundTrip(t *testing.T) {
	g := workflow.New(workflow.Metadata{"name": "etl"})
	g.AddVertex(workflow.Vertex{ID: "extract", Task: workflow.Task{Outputs: []workflow.Artifact{{Name: "raw.dat"}}}})
	g.AddVertex(workflow.Vertex{ID: "load", Label: "Load Warehouse", Task: workflow.Task{Inputs: []workflow.Artifact{{Name: "raw.dat"}}}})
	g.AddEdge("extract", "load")

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if back.VertexCount() != 2 || back.EdgeCount() != 1 {
		t.Fatalf("round trip lost structure: %d vertices, %d edges", back.VertexCount(), back.EdgeCount())
	}
	if name, _ := back.Meta()["name"].(string); name != "etl" {
		t.Errorf("round trip lost workflow name: %q", name)
	}

	v, ok := back.Vertex("load")
	if !ok {
		t.Fatal("vertex load missing after round trip")
	}
	if v.Label != "Load Warehouse" {
		t.Errorf("label = %q, want %q", v.Label, "Load Warehouse")
	}
	if len(v.Task.Inputs) != 1 || v.Task.Inputs[0].Name != "raw.dat" {
		t.Errorf("inputs = %v, want [raw.dat]", v.Task.Inputs)
	}

	// Native order must survive the trip.
	ids := workflow.VertexIDs(back.Vertices())
	if ids[0] != "extract" || ids[1] != "load" {
		t.Errorf("vertex order after round trip = %v", ids)
	}
}

func TestImportExportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")

	g := workflow.New(nil)
	g.AddVertex(workflow.Vertex{ID: "only"})
	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if back.VertexCount() != 1 {
		t.Errorf("VertexCount() = %d, want 1", back.VertexCount())
	}
}

func TestImportDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "wf.toml")
	os.WriteFile(tomlPath, []byte("[[job]]\nid = \"a\"\n"), 0o644)
	g, err := Import(tomlPath)
	if err != nil {
		t.Fatalf("Import(toml): %v", err)
	}
	if g.VertexCount() != 1 {
		t.Errorf("toml import VertexCount() = %d, want 1", g.VertexCount())
	}

	jsonPath := filepath.Join(dir, "wf.json")
	os.WriteFile(jsonPath, []byte(`{"jobs":[{"id":"a"}],"dependencies":[]}`), 0o644)
	if _, err := Import(jsonPath); err != nil {
		t.Fatalf("Import(json): %v", err)
	}
}
