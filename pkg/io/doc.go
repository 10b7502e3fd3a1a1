// Package io provides import and export of workflow graphs in the two
// source formats daxport understands: a JSON graph document and a TOML
// workflow manifest.
//
// # JSON Format
//
// The JSON document has two top-level arrays:
//
//	{
//	  "jobs": [
//	    {"id": "extract", "outputs": ["raw.dat"]},
//	    {"id": "load", "label": "Load Warehouse", "inputs": ["raw.dat"]}
//	  ],
//	  "dependencies": [
//	    {"from": "extract", "to": "load"}
//	  ]
//	}
//
// Job fields:
//   - id (required): unique string identifier, becomes the DAX job id
//   - label: display name (falls back to id)
//   - inputs/outputs: ordered lists of artifact file names
//
// Dependency fields reference job ids; "from" must complete before "to".
//
// Array order is significant and survives round trips: exporters emit
// jobs and dependencies in exactly this order.
//
// # TOML Manifest
//
// The manifest format is friendlier for hand-written workflows:
//
//	name = "etl"
//
//	[[job]]
//	id = "extract"
//	outputs = ["raw.dat"]
//
//	[[job]]
//	id = "load"
//	label = "Load Warehouse"
//	inputs = ["raw.dat"]
//
//	[[dependency]]
//	from = "extract"
//	to = "load"
//
// Jobs may omit the id, in which case a generated identifier is assigned.
//
// The exported [Graph] document type doubles as the storage schema for
// the workflow store (bson tags), mirroring its JSON shape.
package io
