// SPDX-License-Identifier: MIT
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coinpath/builder"
	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/scenario"
)

var errGraphSource = errors.New("use either --graph or --sample, not both")

// graphFlags selects where a command's graph comes from.
type graphFlags struct {
	path   string
	sample string
}

func (gf *graphFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&gf.path, "graph", "", "scenario file (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&gf.sample, "sample", "", "built-in city map: sample or tradeoff (default sample)")
}

// load builds the selected graph. The document is nil for built-in maps.
func (gf *graphFlags) load() (*core.Graph, *scenario.Document, error) {
	if gf.path != "" && gf.sample != "" {
		return nil, nil, errGraphSource
	}
	if gf.path == "" {
		name := gf.sample
		if name == "" {
			name = builder.CityMapSample.String()
		}
		g, err := builder.Sample(name)

		return g, nil, err
	}

	doc, err := scenario.LoadFile(gf.path)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, nil, err
	}

	return g, doc, nil
}
