// Package scale normalizes numeric encodings for the trace builder: it
// rescales raw size values into pixel ranges, remaps continuous color
// palette stops into the [0, 1] gradient positions a plotting backend
// consumes, and generates human-readable tick marks for logarithmic color
// scales.
//
// All functions are pure: they derive new slices and never mutate their
// inputs. Degenerate configurations (for example a palette whose stops all
// share one value) are rejected by pkg/chart validation before any of this
// code runs.
package scale
