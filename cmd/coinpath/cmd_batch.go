// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coinpath/batch"
	"github.com/katalvlaran/coinpath/internal/logging"
	"github.com/katalvlaran/coinpath/internal/render"
	"github.com/katalvlaran/coinpath/scenario"
)

var errNoQueries = errors.New("scenario has no queries")

type batchFlags struct {
	path     string
	name     string
	parallel int
	markdown bool
}

func newBatchCmd() *cobra.Command {
	var bf batchFlags
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every query of a scenario",
		Example: "  coinpath batch --scenario tradeoff --parallel 4\n" +
			"  coinpath batch --graph city.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, &bf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&bf.path, "graph", "", "scenario file with queries (.yaml, .yml or .json)")
	f.StringVar(&bf.name, "scenario", "", "bundled scenario name")
	f.IntVar(&bf.parallel, "parallel", 1, "concurrent searches")
	f.BoolVar(&bf.markdown, "markdown", false, "render Markdown tables")
	cmd.MarkFlagsMutuallyExclusive("graph", "scenario")
	cmd.MarkFlagsOneRequired("graph", "scenario")

	return cmd
}

func runBatch(cmd *cobra.Command, bf *batchFlags) error {
	if bf.parallel < 1 {
		return fmt.Errorf("--parallel must be ≥ 1, got %d", bf.parallel)
	}

	var (
		doc *scenario.Document
		err error
	)
	if bf.path != "" {
		doc, err = scenario.LoadFile(bf.path)
	} else {
		doc, err = scenario.Embedded(bf.name)
	}
	if err != nil {
		return err
	}
	if len(doc.Queries) == 0 {
		return errNoQueries
	}
	g, err := doc.Build()
	if err != nil {
		return err
	}

	log := logging.New("batch")
	outcomes, err := batch.Run(cmd.Context(), g, doc.Queries,
		batch.WithParallel(bf.parallel), batch.WithLogger(log))
	if err != nil {
		return err
	}
	s := batch.Summarize(outcomes)
	log.Info("batch finished", "scenario", doc.Name, "total", s.Total, "found", s.Found)

	mode := render.ASCII
	if bf.markdown {
		mode = render.Markdown
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Outcomes(outcomes, mode))

	return err
}
