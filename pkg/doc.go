// Package pkg provides the core libraries for the tracekit rendering engine.
//
// # Overview
//
// Tracekit turns typed graph documents into backend-neutral plotting scenes.
// The pkg directory is organized into five main areas:
//
//  1. [chart] - Graph kinds, validation, colors and styling configuration
//  2. [render] - Scene construction (traces, layout, scales, bands)
//  3. [io] - Document import/export and figure serialization
//  4. [cache] / [figstore] - Scene caching and figure persistence
//  5. [errors] / [observability] - Structured errors and lifecycle hooks
//
// # Architecture
//
// The typical data flow through tracekit:
//
//	Graph document (JSON, optional TOML overlay)
//	         ↓
//	    [io] package (decode + configuration overlay)
//	         ↓
//	    [chart] package (kind dispatch + validation)
//	         ↓
//	    [render] package (scales, bands, masks → traces + layout)
//	         ↓
//	    JSON/HTML scene output
//
// # Quick Start
//
//	g, err := io.ImportGraph("graph.json")
//	if err != nil {
//	    return err
//	}
//	if invalid := g.Validate(); invalid != nil {
//	    return invalid
//	}
//	fig, err := render.Build(g)
//	if err != nil {
//	    return err
//	}
//	return io.ExportFigure(fig, "scene.json", "json")
package pkg
