package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pegflow/daxport/pkg/workflow"
)

// ReadJSON decodes a JSON graph from r into a workflow graph.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - A job is missing an id or duplicates one
//   - A dependency references an unknown job id
//
// Errors are wrapped with context describing which job or dependency
// caused the problem.
//
// The returned graph is independent of r and can be modified safely
// after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*workflow.Graph, error) {
	var doc Graph
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToWorkflow(doc)
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. The error wraps the underlying cause with the file path for
// context.
func ImportJSON(path string) (*workflow.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Import loads a workflow graph from path, choosing the decoder by file
// extension: .toml is parsed as a workflow manifest, everything else as
// the JSON graph format.
func Import(path string) (*workflow.Graph, error) {
	if filepath.Ext(path) == ".toml" {
		return ImportManifest(path)
	}
	return ImportJSON(path)
}
