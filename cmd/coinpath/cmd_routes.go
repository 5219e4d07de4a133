// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coinpath/dfs"
	"github.com/katalvlaran/coinpath/internal/render"
)

type routesFlags struct {
	graph    graphFlags
	from, to string
	budget   int64
	maxRoads int
	limit    int
	markdown bool
	asJSON   bool
}

func newRoutesCmd() *cobra.Command {
	var rf routesFlags
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every simple route between two cities",
		Long: "Enumerates simple routes depth-first and prints them best first.\n" +
			"The number of routes grows exponentially; cap it on large maps.",
		Example: "  coinpath routes --from A --to I --budget 8",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoutes(cmd, &rf)
		},
	}

	f := cmd.Flags()
	rf.graph.register(cmd)
	f.StringVar(&rf.from, "from", "", "source city (required)")
	f.StringVar(&rf.to, "to", "", "goal city (required)")
	f.Int64Var(&rf.budget, "budget", -1, "maximum coins per route; negative means uncapped")
	f.IntVar(&rf.maxRoads, "max-roads", 0, "maximum roads per route; 0 means uncapped")
	f.IntVar(&rf.limit, "limit", 1000, "stop after this many routes; 0 means unlimited")
	f.BoolVar(&rf.markdown, "markdown", false, "render a Markdown table")
	f.BoolVar(&rf.asJSON, "json", false, "print the routes as JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runRoutes(cmd *cobra.Command, rf *routesFlags) error {
	if rf.maxRoads < 0 || rf.limit < 0 {
		return errors.New("--max-roads and --limit must be non-negative")
	}
	g, _, err := rf.graph.load()
	if err != nil {
		return err
	}

	opts := []dfs.Option{
		dfs.WithContext(cmd.Context()),
		dfs.WithMaxRoads(rf.maxRoads),
		dfs.WithLimit(rf.limit),
	}
	if rf.budget >= 0 {
		opts = append(opts, dfs.WithMaxCoins(rf.budget))
	}
	routes, err := dfs.Routes(g, rf.from, rf.to, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rf.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(routes)
	}
	mode := render.ASCII
	if rf.markdown {
		mode = render.Markdown
	}
	_, err = fmt.Fprint(out, render.Routes(routes, mode))

	return err
}
