package io

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/pegflow/daxport/pkg/errors"
	"github.com/pegflow/daxport/pkg/workflow"
)

// manifest is the TOML shape of a hand-written workflow definition.
type manifest struct {
	Name         string         `toml:"name"`
	Jobs         []manifestJob  `toml:"job"`
	Dependencies []manifestEdge `toml:"dependency"`
}

type manifestJob struct {
	ID      string   `toml:"id"`
	Label   string   `toml:"label"`
	Inputs  []string `toml:"inputs"`
	Outputs []string `toml:"outputs"`
}

type manifestEdge struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// ParseManifest decodes a TOML workflow manifest into a workflow graph.
//
// Jobs without an explicit id are assigned a generated "job-<uuid>"
// identifier, so anonymous steps can still be referenced in the output
// document. Dependencies must reference declared job ids (generated ids
// cannot be referenced from the manifest, since they are not known when
// the manifest is written).
func ParseManifest(data []byte) (*workflow.Graph, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}

	doc := Graph{
		Name:         m.Name,
		Jobs:         make([]Job, len(m.Jobs)),
		Dependencies: make([]Dependency, len(m.Dependencies)),
	}
	for i, j := range m.Jobs {
		id := j.ID
		if id == "" {
			id = "job-" + uuid.NewString()
		}
		doc.Jobs[i] = Job{ID: id, Label: j.Label, Inputs: j.Inputs, Outputs: j.Outputs}
	}
	for i, d := range m.Dependencies {
		doc.Dependencies[i] = Dependency{From: d.From, To: d.To}
	}

	g, err := ToWorkflow(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "build graph from manifest")
	}
	return g, nil
}

// ImportManifest reads a TOML workflow manifest from a file at path.
func ImportManifest(path string) (*workflow.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return ParseManifest(data)
}
