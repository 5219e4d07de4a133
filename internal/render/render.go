// SPDX-License-Identifier: MIT
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/coinpath/batch"
	"github.com/katalvlaran/coinpath/bfs"
	"github.com/katalvlaran/coinpath/constrained"
	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/dfs"
)

const pathSep = " → "

// Graph lists every road of g with its two costs, followed by totals.
func Graph(g *core.Graph, m Mode) string {
	w := newWriter(m)
	w.AppendHeader(table.Row{"Edge", "From", "To", "Distance", "Coins"})
	for _, e := range g.Edges() {
		w.AppendRow(table.Row{e.ID, e.From, e.To, e.Distance, e.Coins})
	}
	st := g.Stats()
	// Components only fails on a nil graph, which Stats above already rules out.
	comps, _ := bfs.Components(g)
	w.AppendFooter(table.Row{
		fmt.Sprintf("%d roads", st.EdgeCount),
		fmt.Sprintf("%d cities", st.VertexCount),
		fmt.Sprintf("%d components", len(comps)),
		st.TotalDistance, st.TotalCoins,
	})
	numeric(w, 4, 5)

	return renderAs(w, m)
}

// Result summarises one search: the route leg by leg, or the failure, and
// optionally the exploration trace.
func Result(g *core.Graph, res *constrained.Result, err error, m Mode, withTrace bool) string {
	var b strings.Builder

	switch {
	case err != nil:
		b.WriteString(describeError(err))
		b.WriteString("\n")
	case res.Found():
		b.WriteString(legs(g, res, m))
	}

	if withTrace && res != nil {
		b.WriteString(trace(res.Trace, m))
	}

	return b.String()
}

// legs renders one row per road on the route with running totals.
func legs(g *core.Graph, res *constrained.Result, m Mode) string {
	w := newWriter(m)
	w.SetTitle(strings.Join(res.Path, pathSep))
	w.AppendHeader(table.Row{"#", "From", "To", "Distance", "Coins", "Σ Distance", "Σ Coins"})

	var dist, coins int64
	for i := 1; i < len(res.Path); i++ {
		from, to := res.Path[i-1], res.Path[i]
		e, err := g.Edge(from, to)
		if err != nil {
			w.AppendRow(table.Row{i, from, to, "?", "?", "", ""})
			continue
		}
		dist += e.Distance
		coins += e.Coins
		w.AppendRow(table.Row{i, from, to, e.Distance, e.Coins, dist, coins})
	}
	w.AppendFooter(table.Row{"", "", "total", "", "", res.Distance, res.Coins})
	numeric(w, 1, 4, 5, 6, 7)

	return renderAs(w, m) + "\n"
}

func trace(t constrained.Trace, m Mode) string {
	w := newWriter(m)
	w.SetTitle("Exploration")
	w.AppendHeader(table.Row{"Visited", "Relaxed"})
	steps := make([]string, len(t.Relaxed))
	for i, s := range t.Relaxed {
		steps[i] = s.From + "→" + s.To
	}
	w.AppendRow(table.Row{strings.Join(t.Visited, " "), strings.Join(steps, " ")})

	return renderAs(w, m) + "\n"
}

// Outcomes renders one row per batch outcome plus a summary footer.
func Outcomes(outcomes []batch.Outcome, m Mode) string {
	w := newWriter(m)
	w.AppendHeader(table.Row{"#", "Source", "Goal", "Budget", "Path", "Distance", "Coins", "Status"})
	for _, o := range outcomes {
		row := table.Row{o.Index, o.Query.Source, o.Query.Goal, o.Query.Budget}
		if o.Err == nil && o.Result.Found() {
			row = append(row, strings.Join(o.Result.Path, pathSep), o.Result.Distance, o.Result.Coins, "ok")
		} else {
			row = append(row, "", "", "", describeError(o.Err))
		}
		w.AppendRow(row)
	}
	s := batch.Summarize(outcomes)
	w.AppendFooter(table.Row{"", "", "", "", "",
		fmt.Sprintf("%d found", s.Found),
		fmt.Sprintf("%d infeasible", s.Infeasible),
		fmt.Sprintf("%d failed", s.Failed)})
	numeric(w, 1, 4, 6, 7)

	return renderAs(w, m)
}

// Routes lists enumerated routes, one per row, best first.
func Routes(routes []dfs.Route, m Mode) string {
	w := newWriter(m)
	w.AppendHeader(table.Row{"#", "Route", "Roads", "Distance", "Coins"})
	for i, r := range routes {
		w.AppendRow(table.Row{i + 1, strings.Join(r.Path, pathSep), len(r.Path) - 1, r.Distance, r.Coins})
	}
	w.AppendFooter(table.Row{"", fmt.Sprintf("%d routes", len(routes)), "", "", ""})
	numeric(w, 1, 3, 4, 5)

	return renderAs(w, m)
}

// describeError phrases search failures for people.
func describeError(err error) string {
	var ie *constrained.InfeasibleError
	switch {
	case err == nil:
		return "no route"
	case errors.As(err, &ie) && !ie.Reachable:
		return fmt.Sprintf("no route: %s cannot be reached from %s", ie.Goal, ie.Source)
	case errors.As(err, &ie):
		return fmt.Sprintf("no route within %d coins (needs at least %d)", ie.Budget, ie.MinCoins)
	default:
		return "error: " + err.Error()
	}
}
