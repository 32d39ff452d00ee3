package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tracekit/tracekit/pkg/cache"
	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/errors"
	tkio "github.com/tracekit/tracekit/pkg/io"
	"github.com/tracekit/tracekit/pkg/render"
)

// renderTTL is how long rendered scenes stay in the local cache. Rendering
// is deterministic, so entries only expire to bound disk usage.
const renderTTL = 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config  string // configuration overlay file
	output  string // output file path; empty means stdout
	format  string // output format: "json" or "html"
	noCache bool   // bypass the local render cache

	// Figure overrides. These are recorded verbatim in the scene's layout
	// for the plotting backend; the engine never interprets them.
	width       float64
	height      float64
	outputFile  string
	interactive bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: "json"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph document into a figure scene",
		Long: `Render loads a graph document, optionally applies a configuration
overlay, validates it, and emits the trace and layout scene for the
plotting backend. Scenes are cached locally keyed by a digest of the
document, so repeated renders of the same input are instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "configuration overlay file (TOML or JSON)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json (default), html")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the local render cache")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "figure width, recorded in the scene layout")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "figure height, recorded in the scene layout")
	cmd.Flags().StringVar(&opts.outputFile, "output-file", "", "backend output file, recorded in the scene layout")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "mark the scene interactive for the backend")

	return cmd
}

// applyFigureOverrides copies the figure flags into the graph's
// configuration so they flow into the scene layout like any configured
// value (and take part in the cache key).
func applyFigureOverrides(g chart.Graph, opts renderOpts) {
	fig := chart.FigureConfig(g)
	if fig == nil {
		return
	}
	if opts.width > 0 {
		fig.Width = &opts.width
	}
	if opts.height > 0 {
		fig.Height = &opts.height
	}
	if opts.outputFile != "" {
		fig.OutputFile = opts.outputFile
	}
	if opts.interactive {
		fig.Interactive = true
	}
}

// runRender executes the render pipeline: import, validate, build (or fetch
// from cache), export.
func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	track := newProgress(c.Logger)

	g, err := tkio.ImportGraph(path)
	if err != nil {
		return err
	}
	if opts.config != "" {
		if err := tkio.ApplyConfig(opts.config, g); err != nil {
			return err
		}
	}
	applyFigureOverrides(g, opts)
	if invalid := g.Validate(); invalid != nil {
		printError("Invalid %s graph", g.Kind())
		printDetail("%s", invalid.Message)
		return invalid
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	// The cache key is a digest of the canonical document, so config
	// overlays and in-place edits produce distinct entries.
	var doc bytes.Buffer
	if err := tkio.WriteGraph(g, &doc); err != nil {
		return err
	}
	key := cache.NewDefaultKeyer().RenderKey(doc.Bytes())

	scene, cached, err := store.Get(ctx, key)
	if err != nil {
		c.Logger.Warn("Cache read failed", "error", err)
		cached = false
	}

	if !cached {
		spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s graph", g.Kind()))
		spinner.Start()

		fig, err := render.Build(g)
		if err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
		scene, err = fig.MarshalIndent()
		spinner.Stop()
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := store.Set(ctx, key, scene, renderTTL); err != nil {
			c.Logger.Warn("Cache write failed", "error", err)
		}
	}

	var fig render.Figure
	if err := json.Unmarshal(scene, &fig); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "decode cached scene")
	}

	if opts.output == "" {
		if err := tkio.WriteFigure(&fig, os.Stdout, opts.format); err != nil {
			return err
		}
	} else {
		if err := tkio.ExportFigure(&fig, opts.output, opts.format); err != nil {
			return err
		}
		printSuccess("Rendered %s graph", g.Kind())
		printStats(string(g.Kind()), len(fig.Traces), cached)
		printFile(opts.output)
	}

	track.done(fmt.Sprintf("Render complete, %d traces", len(fig.Traces)))
	return nil
}
