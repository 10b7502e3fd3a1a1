// Package dot renders workflow graphs as Graphviz node-link diagrams.
//
// This is a preview aid, not an interchange format: the DAX document in
// [github.com/pegflow/daxport/pkg/render/dax] is what schedulers consume.
// DOT output is useful for eyeballing a workflow's shape before shipping
// it, and can be rasterized to SVG or PNG via the embedded Graphviz
// runtime (no system Graphviz installation required).
package dot
