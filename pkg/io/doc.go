// Package io reads graph documents and writes rendered figures.
//
// # Overview
//
// A graph travels as a JSON envelope with a kind discriminator:
//
//	{
//	  "kind": "points",
//	  "data": {"xs": [1, 2], "ys": [3, 4]},
//	  "configuration": {"figure": {"title": "t"}}
//	}
//
// The kind selects the concrete data and configuration types; unknown
// kinds are rejected at decode time, before validation. Configurations
// can also live in standalone files, TOML or JSON, and be applied over an
// imported graph; this keeps bulky data documents and hand-edited style
// files separate.
//
// # Import
//
// Use [ImportGraph] to read an envelope from a file path, or [ReadGraph]
// to read from any io.Reader. [ApplyConfig] decodes a standalone
// configuration file (TOML by extension, JSON otherwise) into an imported
// graph's configuration. Importing never validates: callers decide when
// to run Validate, so a config file can be applied over an incomplete
// envelope first.
//
// # Export
//
// [ExportFigure] writes a rendered figure to a file in one of two
// formats: "json" emits the backend-neutral trace/layout scene, "html"
// wraps the same scene in a standalone page stub a charting backend can
// hydrate. Output paths are checked with the conservative path rules of
// pkg/errors before anything is written.
package io
