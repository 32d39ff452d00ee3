package render_test

import (
	"fmt"

	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/render"
)

func ExampleBuild() {
	// A minimal scatter: three points, no styling.
	g := &chart.PointsGraph{
		Data: chart.PointsData{
			Xs: []float64{1, 2, 3},
			Ys: []float64{2, 4, 6},
		},
	}

	fig, err := render.Build(g)
	if err != nil {
		panic(err)
	}

	fmt.Println("Traces:", len(fig.Traces))
	fmt.Println("Kind:", fig.Traces[0].Kind)
	// Output:
	// Traces: 1
	// Kind: marker
}

func ExampleBuild_cdf() {
	// A CDF renders the ranked values as one step curve.
	g := &chart.CdfGraph{
		Data: chart.CdfData{Values: []float64{3, 1, 2, 4}},
	}

	fig, err := render.Build(g)
	if err != nil {
		panic(err)
	}

	curve := fig.Traces[0]
	fmt.Println("Xs:", curve.Xs)
	fmt.Println("Ys:", curve.Ys)
	// Output:
	// Xs: [1 2 3 4]
	// Ys: [0.25 0.5 0.75 1]
}
