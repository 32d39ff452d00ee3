package chart

import (
	"fmt"
	"strconv"
)

// Invalid is a recoverable validation result: a human-readable message
// naming the offending field path. It is intentionally distinct from the
// structured errors in pkg/errors — validation results are surfaced to the
// user building a graph, not treated as failures of the engine.
//
// A nil *Invalid means the object is internally consistent.
type Invalid struct {
	Message string
}

// Error implements the error interface so an Invalid can cross API
// boundaries that expect one.
func (e *Invalid) Error() string { return e.Message }

// invalidf builds an Invalid with a formatted message.
func invalidf(format string, args ...any) *Invalid {
	return &Invalid{Message: fmt.Sprintf(format, args...)}
}

// ftoa formats a float the way validation messages expect: "5", not "5.000".
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// notLarger builds the shared "X is not larger than Y" ordering message.
func notLarger(highPath string, high float64, lowPath string, low float64) *Invalid {
	return invalidf("%s: %s is not larger than %s: %s", highPath, ftoa(high), lowPath, ftoa(low))
}

// notLess builds the shared "X is not less than Y" ordering message.
func notLess(lowPath string, low float64, highPath string, high float64) *Invalid {
	return invalidf("%s: %s is not less than %s: %s", lowPath, ftoa(low), highPath, ftoa(high))
}

// invalidPathIndex appends an array index to a field path.
func invalidPathIndex(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// MustValid panics with the validation message if v reports invalid.
// It is the rendering path's assertion form of Validate.
func MustValid(v interface{ Validate() *Invalid }) {
	if invalid := v.Validate(); invalid != nil {
		panic("invalid graph: " + invalid.Message)
	}
}
