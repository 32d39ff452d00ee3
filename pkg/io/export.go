package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/errors"
	"github.com/tracekit/tracekit/pkg/render"
)

// WriteGraph encodes a graph as its JSON envelope and writes it to w. The
// output round-trips through [ReadGraph].
func WriteGraph(g chart.Graph, w io.Writer) error {
	data, err := json.Marshal(dataTarget(g))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s data", g.Kind())
	}
	config, err := json.Marshal(configTarget(g))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s configuration", g.Kind())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope{
		Kind:          string(g.Kind()),
		Data:          data,
		Configuration: config,
	})
}

// WriteFigure writes a rendered figure to w in the given format: "json"
// emits the trace/layout scene, "html" a standalone page stub embedding
// it.
func WriteFigure(fig *render.Figure, w io.Writer, format string) error {
	if err := errors.ValidateFormat(format); err != nil {
		return err
	}

	scene, err := fig.MarshalIndent()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode figure")
	}

	switch format {
	case "json":
		_, err = w.Write(scene)
	case "html":
		_, err = fmt.Fprintf(w, htmlPage, fig.Layout.Title, scene)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write figure")
	}
	return nil
}

// ExportFigure writes a rendered figure to the file at path, after
// checking the path and format.
func ExportFigure(fig *render.Figure, path, format string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := errors.ValidateFormat(format); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "create %s", path)
	}
	defer f.Close()
	return WriteFigure(fig, f, format)
}

// htmlPage wraps a figure scene in a minimal standalone page. The scene
// sits in a JSON script tag for a charting backend to hydrate.
const htmlPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>%s</title>
</head>
<body>
  <div id="figure"></div>
  <script id="scene" type="application/json">
%s
  </script>
</body>
</html>
`
