// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coinpath/constrained"
	"github.com/katalvlaran/coinpath/internal/logging"
	"github.com/katalvlaran/coinpath/internal/render"
)

type solveFlags struct {
	graph     graphFlags
	from, to  string
	budget    int64
	heuristic string
	pruning   string
	markdown  bool
	trace     bool
	asJSON    bool
}

func newSolveCmd() *cobra.Command {
	var sf solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the shortest route within a coin budget",
		Example: "  coinpath solve --from A --to I --budget 8\n" +
			"  coinpath solve --sample tradeoff --from A --to I --budget 17 --trace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, &sf)
		},
	}

	f := cmd.Flags()
	sf.graph.register(cmd)
	f.StringVar(&sf.from, "from", "", "source city (required)")
	f.StringVar(&sf.to, "to", "", "goal city (required)")
	f.Int64Var(&sf.budget, "budget", 0, "maximum coins to spend (required)")
	f.StringVar(&sf.heuristic, "heuristic", "stored", "stored, zero or exact")
	f.StringVar(&sf.pruning, "pruning", "pareto", "pareto or exact")
	f.BoolVar(&sf.markdown, "markdown", false, "render Markdown tables")
	f.BoolVar(&sf.trace, "trace", false, "show the exploration trace")
	f.BoolVar(&sf.asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func runSolve(cmd *cobra.Command, sf *solveFlags) error {
	g, _, err := sf.graph.load()
	if err != nil {
		return err
	}
	h, err := constrained.ParseHeuristic(sf.heuristic, g, sf.to)
	if err != nil {
		return err
	}
	p, err := constrained.ParsePruning(sf.pruning)
	if err != nil {
		return err
	}

	res, err := constrained.FindPath(g, sf.from, sf.to, sf.budget,
		constrained.WithHeuristic(h),
		constrained.WithPruning(p),
		constrained.WithLogger(logging.New("search")))
	if err != nil && !errors.Is(err, constrained.ErrNoFeasiblePath) {
		return err
	}

	out := cmd.OutOrStdout()
	if sf.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(constrained.NewReport(res, err))
	}

	mode := render.ASCII
	if sf.markdown {
		mode = render.Markdown
	}
	_, werr := fmt.Fprint(out, render.Result(g, res, err, mode, sf.trace))

	return werr
}
