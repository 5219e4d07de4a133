// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coinpath/builder"
	"github.com/katalvlaran/coinpath/internal/render"
	"github.com/katalvlaran/coinpath/scenario"
)

type sampleFlags struct {
	name   string
	format string
}

func newSampleCmd() *cobra.Command {
	var sf sampleFlags
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a built-in city map",
		Long: "Prints a built-in city map as a table, or as a scenario document\n" +
			"that solve --graph and batch --graph accept.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSample(cmd, &sf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&sf.name, "name", "sample", "sample or tradeoff")
	f.StringVar(&sf.format, "format", "table", "table, markdown, yaml or json")

	return cmd
}

func runSample(cmd *cobra.Command, sf *sampleFlags) error {
	g, err := builder.Sample(sf.name)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch sf.format {
	case "table":
		_, err = fmt.Fprintln(out, render.Graph(g, render.ASCII))
		return err
	case "markdown":
		_, err = fmt.Fprintln(out, render.Graph(g, render.Markdown))
		return err
	}

	doc, err := scenario.FromGraph(sf.name, g, nil)
	if err != nil {
		return err
	}
	data, err := doc.Marshal("." + sf.format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)

	return err
}
