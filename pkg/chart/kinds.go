package chart

import "fmt"

// GraphKind is the closed set of graph kinds the engine renders. The trace
// builder dispatches on this variant with an exhaustive switch; adding a
// kind means adding a case there, not a new dispatch mechanism.
type GraphKind string

// Graph kinds.
const (
	KindPoints        GraphKind = "points"
	KindGrid          GraphKind = "grid"
	KindLine          GraphKind = "line"
	KindLines         GraphKind = "lines"
	KindCdf           GraphKind = "cdf"
	KindCdfs          GraphKind = "cdfs"
	KindBar           GraphKind = "bar"
	KindBars          GraphKind = "bars"
	KindDistribution  GraphKind = "distribution"
	KindDistributions GraphKind = "distributions"
)

// Kinds lists every graph kind in a stable order.
func Kinds() []GraphKind {
	return []GraphKind{
		KindPoints, KindGrid,
		KindLine, KindLines,
		KindCdf, KindCdfs,
		KindBar, KindBars,
		KindDistribution, KindDistributions,
	}
}

// ParseKind converts a string into a GraphKind.
func ParseKind(s string) (GraphKind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown graph kind: %q", s)
}

// Graph is one renderable graph: a data object paired with its
// configuration. Concrete types are PointsGraph, GridGraph, LineGraph,
// LinesGraph, CdfGraph, CdfsGraph, BarGraph, BarsGraph, DistributionGraph
// and DistributionsGraph.
type Graph interface {
	// Kind returns the variant discriminator.
	Kind() GraphKind
	// Validate checks cross-field consistency; nil means consistent.
	Validate() *Invalid
}

// FigureConfig returns the kind-independent figure configuration embedded
// in a graph's configuration, for callers that override figure chrome
// (title, dimensions, output file) after loading.
func FigureConfig(g Graph) *FigureConfiguration {
	switch g := g.(type) {
	case *PointsGraph:
		return &g.Configuration.Figure
	case *GridGraph:
		return &g.Configuration.Figure
	case *LineGraph:
		return &g.Configuration.Figure
	case *LinesGraph:
		return &g.Configuration.Figure
	case *CdfGraph:
		return &g.Configuration.Figure
	case *CdfsGraph:
		return &g.Configuration.Figure
	case *BarGraph:
		return &g.Configuration.Figure
	case *BarsGraph:
		return &g.Configuration.Figure
	case *DistributionGraph:
		return &g.Configuration.Figure
	case *DistributionsGraph:
		return &g.Configuration.Figure
	default:
		return nil
	}
}
