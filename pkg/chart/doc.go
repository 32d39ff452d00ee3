// Package chart defines the data model of the rendering engine: per-kind
// graph data and configuration objects, and the cross-field consistency
// validator over them.
//
// # Data Model
//
// Every graph kind pairs a data object (the sampled values) with a
// configuration object (axes, bands, styles, scales). Both are plain value
// objects constructed by the caller, or decoded from JSON/TOML, and are
// treated as immutable once built: the engine never mutates them, and
// defaults are applied by pure with-defaults constructors rather than by
// in-place mutation.
//
// Optional scalar fields are pointers; absent means "derive from the data"
// or "feature off". Optional per-item arrays are nil or must match the
// primary coordinate array's length exactly.
//
// # Validation
//
// Validation is pure and total: Validate never mutates and never panics on
// well-typed input. It composes top-down — a parent object validates itself
// only after every child validates clean — and returns a *Invalid naming
// the offending field path, for example:
//
//	configuration.value_axis.maximum: 0 is not larger than configuration.value_axis.minimum: 1
//
// MustValid runs the identical checks but panics on failure. It is used by
// the rendering path, where the caller was expected to have already
// surfaced validation problems to a human; reaching it with an invalid
// object is a programming error, not a data error.
package chart
