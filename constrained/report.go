// SPDX-License-Identifier: MIT
package constrained

import "errors"

// Report is the flat JSON view of one search outcome. Steps are encoded as
// [from, to] pairs. Error, Reachable and MinCoins are set only for failures.
type Report struct {
	Path     []string    `json:"path"`
	Distance int64       `json:"distance"`
	Coins    int64       `json:"coins"`
	Visited  []string    `json:"visited"`
	Relaxed  [][2]string `json:"relaxed"`
	Expanded int         `json:"expanded"`
	Pushed   int         `json:"pushed"`

	Error     string `json:"error,omitempty"`
	Reachable *bool  `json:"reachable,omitempty"`
	MinCoins  *int64 `json:"min_coins,omitempty"`
}

// NewReport flattens res and err. The trace of an infeasible search is kept.
func NewReport(res *Result, err error) Report {
	var rep Report
	if res != nil {
		rep = Report{
			Path:     res.Path,
			Distance: res.Distance,
			Coins:    res.Coins,
			Visited:  res.Trace.Visited,
			Relaxed:  make([][2]string, len(res.Trace.Relaxed)),
			Expanded: res.Expanded,
			Pushed:   res.Pushed,
		}
		for i, st := range res.Trace.Relaxed {
			rep.Relaxed[i] = [2]string{st.From, st.To}
		}
	}
	if err == nil {
		return rep
	}

	rep.Error = err.Error()
	var ie *InfeasibleError
	if errors.As(err, &ie) {
		reachable := ie.Reachable
		rep.Reachable = &reachable
		if reachable {
			minCoins := ie.MinCoins
			rep.MinCoins = &minCoins
		}
	}

	return rep
}
