package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/errors"
)

// envelope is the wire form of a graph document.
type envelope struct {
	Kind          string          `json:"kind"`
	Data          json.RawMessage `json:"data"`
	Configuration json.RawMessage `json:"configuration"`
}

// ReadGraph decodes a graph envelope from r. The kind discriminator
// selects the concrete graph type; data and configuration decode into it.
// ReadGraph does not validate the result.
func ReadGraph(r io.Reader) (chart.Graph, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode graph document")
	}

	kind, err := chart.ParseKind(env.Kind)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidKind, err, "graph document")
	}

	g := emptyGraph(kind)
	if env.Data != nil {
		if err := json.Unmarshal(env.Data, dataTarget(g)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "decode %s data", kind)
		}
	}
	if env.Configuration != nil {
		if err := json.Unmarshal(env.Configuration, configTarget(g)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s configuration", kind)
		}
	}
	return g, nil
}

// ImportGraph reads a graph envelope from the file at path.
func ImportGraph(path string) (chart.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadGraph(f)
}

// ApplyConfig decodes a standalone configuration file into g's
// configuration, replacing whatever the envelope carried. Files ending in
// .toml decode as TOML, everything else as JSON.
func ApplyConfig(path string, g chart.Graph) error {
	target := configTarget(g)
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, target); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config %s", path)
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}
	return nil
}

// emptyGraph instantiates the zero graph of a kind.
func emptyGraph(kind chart.GraphKind) chart.Graph {
	switch kind {
	case chart.KindPoints:
		return &chart.PointsGraph{}
	case chart.KindGrid:
		return &chart.GridGraph{}
	case chart.KindLine:
		return &chart.LineGraph{}
	case chart.KindLines:
		return &chart.LinesGraph{}
	case chart.KindCdf:
		return &chart.CdfGraph{}
	case chart.KindCdfs:
		return &chart.CdfsGraph{}
	case chart.KindBar:
		return &chart.BarGraph{}
	case chart.KindBars:
		return &chart.BarsGraph{}
	case chart.KindDistribution:
		return &chart.DistributionGraph{}
	case chart.KindDistributions:
		return &chart.DistributionsGraph{}
	}
	return nil
}

// dataTarget returns a pointer to g's data struct.
func dataTarget(g chart.Graph) interface{} {
	switch t := g.(type) {
	case *chart.PointsGraph:
		return &t.Data
	case *chart.GridGraph:
		return &t.Data
	case *chart.LineGraph:
		return &t.Data
	case *chart.LinesGraph:
		return &t.Data
	case *chart.CdfGraph:
		return &t.Data
	case *chart.CdfsGraph:
		return &t.Data
	case *chart.BarGraph:
		return &t.Data
	case *chart.BarsGraph:
		return &t.Data
	case *chart.DistributionGraph:
		return &t.Data
	case *chart.DistributionsGraph:
		return &t.Data
	}
	return nil
}

// configTarget returns a pointer to g's configuration struct.
func configTarget(g chart.Graph) interface{} {
	switch t := g.(type) {
	case *chart.PointsGraph:
		return &t.Configuration
	case *chart.GridGraph:
		return &t.Configuration
	case *chart.LineGraph:
		return &t.Configuration
	case *chart.LinesGraph:
		return &t.Configuration
	case *chart.CdfGraph:
		return &t.Configuration
	case *chart.CdfsGraph:
		return &t.Configuration
	case *chart.BarGraph:
		return &t.Configuration
	case *chart.BarsGraph:
		return &t.Configuration
	case *chart.DistributionGraph:
		return &t.Configuration
	case *chart.DistributionsGraph:
		return &t.Configuration
	}
	return nil
}
