// Package series prepares multiple line series for stacked rendering:
// unifying independently-sampled series onto a shared x-grid and
// accumulating the stacked, fraction, or percent y-values.
package series
