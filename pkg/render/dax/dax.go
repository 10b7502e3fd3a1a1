package dax

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/pegflow/daxport/pkg/errors"
	"github.com/pegflow/daxport/pkg/workflow"
)

// Schema constants for the Pegasus DAX 3.6 interchange format.
// These values are fixed by the schema, never derived from input.
const (
	// Namespace is the default XML namespace of the document.
	Namespace = "http://pegasus.isi.edu/schema/DAX"

	// XSINamespace is the XML Schema instance namespace.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// SchemaLocation binds the DAX namespace to its 3.6 XSD.
	SchemaLocation = Namespace + " http://pegasus.isi.edu/schema/dax-3.6.xsd"

	// SchemaVersion is the DAX schema version emitted on the root element.
	SchemaVersion = "3.6"
)

// Placeholder is emitted for the runtime and size attributes. The schema
// requires both attributes, but the upstream system does not compute them
// yet; consumers depend on their presence, so the literal is written
// rather than omitting the attributes.
const Placeholder = "tbd"

// DefaultEncoding is the encoding name written in the XML declaration
// when Options.Encoding is empty.
const DefaultEncoding = "UTF-8"

// Graph is the read-only view the renderer consumes. Vertices and edges
// must come back in a stable order; the renderer emits them exactly as
// iterated, without re-sorting. [workflow.Graph] satisfies this.
type Graph interface {
	Vertices() []*workflow.Vertex
	Edges() []workflow.Edge
}

// Options configures DAX document rendering.
type Options struct {
	// Encoding is the character encoding name echoed in the XML
	// declaration. Defaults to "UTF-8". The byte stream itself carries
	// whatever the writer produces; Go strings are UTF-8.
	Encoding string

	// Compact disables indentation. The default output is indented two
	// spaces per level for readability; schedulers accept either form.
	Compact bool
}

func (o Options) encoding() string {
	if o.Encoding == "" {
		return DefaultEncoding
	}
	return o.Encoding
}

// Write renders g as a Pegasus DAX 3.6 document onto w in a single
// streaming pass: the XML declaration, the adag root, one job element per
// vertex (inputs then outputs as nested uses elements), then one
// child/parent pair per edge.
//
// Edge direction is inverted on output: a graph edge from→to is rendered
// as child ref=to containing parent ref=from, because the schema expresses
// "child depends on parent" rather than "parent precedes child".
//
// Write never modifies g. It fails with a PRECONDITION_VIOLATION error if
// an edge endpoint is nil (no further edges are written past that point)
// and with an IO_ERROR if w rejects a write. The document on w may be
// incomplete after a failure; callers are expected to discard it.
func Write(g Graph, w io.Writer, opts Options) error {
	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"%s\"?>\n", opts.encoding()); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write xml declaration")
	}

	enc := xml.NewEncoder(w)
	if !opts.Compact {
		enc.Indent("", "  ")
	}

	root := xml.StartElement{
		Name: xml.Name{Local: "adag"},
		Attr: []xml.Attr{
			attr("xmlns", Namespace),
			attr("xmlns:xsi", XSINamespace),
			attr("xsi:schemaLocation", SchemaLocation),
			attr("version", SchemaVersion),
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write adag element")
	}

	for _, v := range g.Vertices() {
		if err := writeJob(enc, v); err != nil {
			return err
		}
	}

	for i, e := range g.Edges() {
		if e.From == nil || e.To == nil {
			// Flush so everything emitted before the bad edge reaches
			// the destination; the caller decides what to discard. The
			// precondition error outranks any flush failure here.
			_ = enc.Flush()
			return errors.New(errors.ErrCodePrecondition, "edge %d has a nil endpoint", i)
		}
		if err := writeDependency(enc, e); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close adag element")
	}
	if err := enc.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "flush document")
	}
	return nil
}

// writeJob emits one job element with its nested uses elements, inputs
// before outputs, each sequence in native order.
func writeJob(enc *xml.Encoder, v *workflow.Vertex) error {
	job := xml.StartElement{
		Name: xml.Name{Local: "job"},
		Attr: []xml.Attr{
			attr("id", v.ID),
			attr("name", v.DisplayLabel()),
			attr("runtime", Placeholder),
		},
	}
	if err := enc.EncodeToken(job); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write job %s", v.ID)
	}

	for _, in := range v.Task.Inputs {
		if err := writeUses(enc, in.Name, "input"); err != nil {
			return err
		}
	}
	for _, out := range v.Task.Outputs {
		if err := writeUses(enc, out.Name, "output"); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(job.End()); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close job %s", v.ID)
	}
	return nil
}

// writeUses emits one uses element. Everything except file and link is a
// schema-required constant at this stage of the pipeline.
func writeUses(enc *xml.Encoder, file, link string) error {
	uses := xml.StartElement{
		Name: xml.Name{Local: "uses"},
		Attr: []xml.Attr{
			attr("file", file),
			attr("link", link),
			attr("register", "true"),
			attr("transfer", "true"),
			attr("optional", "false"),
			attr("type", "data"),
			attr("size", Placeholder),
		},
	}
	if err := enc.EncodeToken(uses); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write uses %s", file)
	}
	if err := enc.EncodeToken(uses.End()); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close uses %s", file)
	}
	return nil
}

// writeDependency emits the child/parent pair for one edge, inverted
// relative to the edge direction.
func writeDependency(enc *xml.Encoder, e workflow.Edge) error {
	child := xml.StartElement{
		Name: xml.Name{Local: "child"},
		Attr: []xml.Attr{attr("ref", e.To.ID)},
	}
	parent := xml.StartElement{
		Name: xml.Name{Local: "parent"},
		Attr: []xml.Attr{attr("ref", e.From.ID)},
	}

	for _, tok := range []xml.Token{child, parent, parent.End(), child.End()} {
		if err := enc.EncodeToken(tok); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write dependency %s->%s", e.From.ID, e.To.ID)
		}
	}
	return nil
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// Marshal renders g to an in-memory byte slice.
// Use Write for streaming output or WriteFile for files.
func Marshal(g Graph, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders g to a file at path.
// The file is created with 0644 permissions and is flushed and closed on
// every exit path, including failures; on failure its content is
// incomplete and should be discarded.
func WriteFile(g Graph, path string, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", path)
		}
	}()
	return Write(g, f, opts)
}
