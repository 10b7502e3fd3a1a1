package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pegflow/daxport/pkg/errors"
	"github.com/pegflow/daxport/pkg/io"
	"github.com/pegflow/daxport/pkg/observability"
	"github.com/pegflow/daxport/pkg/render/dax"
	"github.com/pegflow/daxport/pkg/render/dot"
	"github.com/pegflow/daxport/pkg/workflow"
)

// exportOpts holds the command-line flags for the export command.
// These options control output formats, XML encoding, and validation.
type exportOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "xml", "dot", "svg", "png", "json"
	encoding string   // encoding name for the XML declaration
	compact  bool     // emit XML without indentation
	detailed bool     // show artifact details in DOT previews
	validate bool     // check edge consistency and acyclicity before rendering
}

// newExportCmd creates the export command for rendering workflow graphs.
// It reads a JSON graph or TOML manifest and writes one file per requested
// format.
//
// Default settings:
//   - format: xml (the abstract DAG document)
//   - encoding: UTF-8
//   - validate: true (reject graphs with cycles before rendering)
func newExportCmd() *cobra.Command {
	var formatsStr string
	opts := exportOpts{
		validate: true,
	}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render a workflow graph to DAG XML or a preview format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): xml (default), dot, svg, png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "encoding name for the XML declaration (default UTF-8)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "emit XML without indentation")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include input/output artifacts in DOT previews")
	cmd.Flags().BoolVar(&opts.validate, "validate", opts.validate, "check edge consistency and acyclicity before rendering")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["xml"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"xml"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"xml": true, "dot": true, "svg": true, "png": true, "json": true}

// validateFormats checks that all requested formats are valid.
// It returns an error if any format is not in validFormats.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'xml', 'dot', 'svg', 'png', or 'json')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.xml, .svg, etc.), it strips that extension.
// This is used when generating multiple files (e.g., etl.xml, etl.svg).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	// Strip known format extensions from output path
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runExport loads the graph from input, optionally validates it, and renders
// it to the requested formats.
func runExport(ctx context.Context, input string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Exporting %s", input)

	p := newProgress(logger)
	observability.Render().OnImportStart(ctx, filepath.Ext(input), input)
	g, err := io.Import(input)
	observability.Render().OnImportComplete(ctx, filepath.Ext(input), input, graphJobCount(g), time.Since(p.start), err)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Loaded %d jobs, %d dependencies", g.VertexCount(), g.EdgeCount()))

	if opts.validate {
		if err := g.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGraph, err, "validate %s", input)
		}
		logger.Debug("Graph validated: consistent and acyclic")
	}

	if len(opts.formats) == 1 {
		return exportSingle(ctx, g, opts.formats[0], input, opts)
	}
	return exportMultiple(ctx, g, input, opts)
}

func graphJobCount(g *workflow.Graph) int {
	if g == nil {
		return 0
	}
	return g.VertexCount()
}

// exportSingle renders a single format to a single output file.
// If opts.output is empty, the output path is derived from the input file name.
func exportSingle(ctx context.Context, g *workflow.Graph, format, input string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)

	data, err := renderFormat(ctx, g, format, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	// Determine output path: use provided output or derive from input
	outputPath := opts.output
	if outputPath == "" {
		outputPath = basePath("", input) + "." + format
	}

	if err := writeOutput(outputPath, data); err != nil {
		return err
	}
	printSuccess("Exported %s", format)
	printFile(outputPath)
	return nil
}

// exportMultiple renders all requested formats to separate files.
// File names are derived from basePath plus the format extension.
func exportMultiple(ctx context.Context, g *workflow.Graph, input string, opts *exportOpts) error {
	base := basePath(opts.output, input)

	for _, format := range opts.formats {
		data, err := renderFormat(ctx, g, format, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}

		path := base + "." + format
		if err := writeOutput(path, data); err != nil {
			return err
		}
		printFile(path)
	}
	printSuccess("Exported %d formats", len(opts.formats))
	return nil
}

// writeOutput writes data to path after validating the path.
func writeOutput(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// renderFormat dispatches to the appropriate renderer based on format.
// SVG and PNG previews run Graphviz and show a spinner while it works.
func renderFormat(ctx context.Context, g *workflow.Graph, format string, opts *exportOpts) (data []byte, err error) {
	logger := loggerFromContext(ctx)

	start := time.Now()
	observability.Render().OnRenderStart(ctx, format, g.VertexCount())
	defer func() {
		observability.Render().OnRenderComplete(ctx, format, time.Since(start), err)
	}()

	switch format {
	case "xml":
		logger.Info("Rendering DAG XML")
		return dax.Marshal(g, dax.Options{Encoding: opts.encoding, Compact: opts.compact})
	case "json":
		logger.Info("Rendering JSON graph")
		return io.MarshalJSON(g)
	case "dot":
		logger.Info("Rendering DOT preview")
		return []byte(dot.ToDOT(g, dot.Options{Detailed: opts.detailed})), nil
	case "svg", "png":
		logger.Infof("Rendering %s preview via Graphviz", format)
		src := dot.ToDOT(g, dot.Options{Detailed: opts.detailed})

		spinner := newRenderSpinner(ctx, format)
		spinner.Start()
		if format == "svg" {
			data, err = dot.RenderSVG(ctx, src)
		} else {
			data, err = dot.RenderPNG(ctx, src)
		}
		spinner.Stop()
		return data, err
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}
