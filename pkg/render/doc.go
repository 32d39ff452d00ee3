// Package render turns validated graphs into draw-ready figures.
//
// # Overview
//
// Build is the single entry point: it dispatches on the graph's kind and
// assembles an ordered list of primitive traces (fills, lines, markers,
// bars, boxes) plus one layout descriptor. The output is a plain
// JSON-serializable scene for a generic 2-D plotting backend; this package
// never rasterizes anything.
//
// # Trace ordering
//
// Order is a correctness property: band fills come first so they sit under
// the data, then edges, markers, borders and bars, then band lines so their
// strokes stay visible on top. Within the data traces, categorical palettes
// split the points into one trace per category (in palette order) so every
// category gets its own legend entry and toggle.
//
// Rendering assumes a validated graph: Build panics via chart.MustValid on
// inconsistent input, since validation errors were expected to be surfaced
// to a human before rendering starts.
package render
