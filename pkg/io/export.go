package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pegflow/daxport/pkg/workflow"
)

// WriteJSON encodes a workflow graph as JSON and writes it to w.
// The output preserves job and dependency order and can be re-imported
// with [ReadJSON] for round-trip processing.
func WriteJSON(g *workflow.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromWorkflow(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON converts a workflow graph to JSON bytes.
func MarshalJSON(g *workflow.Graph) ([]byte, error) {
	data, err := json.MarshalIndent(FromWorkflow(g), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return append(data, '\n'), nil
}

// ExportJSON writes a workflow graph to a JSON file at path.
// The file is created with 0644 permissions.
func ExportJSON(g *workflow.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
