// SPDX-License-Identifier: MIT
// Package constrained defines result, trace, error and option types for the
// budgeted shortest-path search.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNegativeBudget  if budget < 0.
//	– ErrTrivialQuery    if source == goal.
//	– ErrNoFeasiblePath  if no source→goal path fits the budget (delivered as *InfeasibleError).
//	– ErrExpansionLimit  if WithMaxExpansions stopped the search early.
//	– ErrEmptyPath       if Evaluate receives no vertices.
//	– ErrNotAdjacent     if Evaluate receives two consecutive unconnected vertices.
//	– ErrUnknownStrategy if ParseHeuristic/ParsePruning receive an unknown name.
//
// Unknown source/goal IDs are reported by wrapping core.ErrVertexNotFound.
package constrained

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors returned by the constrained search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("constrained: graph is nil")

	// ErrNegativeBudget indicates a budget below zero.
	ErrNegativeBudget = errors.New("constrained: budget must be non-negative")

	// ErrTrivialQuery indicates source and goal are the same vertex.
	ErrTrivialQuery = errors.New("constrained: source equals goal")

	// ErrNoFeasiblePath indicates that no path from source to goal has a coin
	// cost within the budget. It is an expected outcome, not a defect.
	ErrNoFeasiblePath = errors.New("constrained: no feasible path within budget")

	// ErrExpansionLimit indicates the search stopped after MaxExpansions labels.
	ErrExpansionLimit = errors.New("constrained: expansion limit reached")

	// ErrEmptyPath indicates Evaluate was given an empty vertex sequence.
	ErrEmptyPath = errors.New("constrained: path is empty")

	// ErrNotAdjacent indicates two consecutive path vertices share no edge.
	ErrNotAdjacent = errors.New("constrained: consecutive vertices are not adjacent")

	// ErrUnknownStrategy indicates an unrecognised heuristic or pruning name.
	ErrUnknownStrategy = errors.New("constrained: unknown strategy")
)

// InfeasibleError reports a well-formed query that no path satisfies.
// errors.Is(err, ErrNoFeasiblePath) holds for every *InfeasibleError.
type InfeasibleError struct {
	Source string `json:"source"`
	Goal   string `json:"goal"`
	Budget int64  `json:"budget"`

	// Reachable is false when no path joins Source and Goal at any budget.
	Reachable bool `json:"reachable"`

	// MinCoins is the smallest budget with which Goal is reachable.
	// Meaningful only when Reachable is true.
	MinCoins int64 `json:"min_coins"`
}

// Error implements error.
func (e *InfeasibleError) Error() string {
	if !e.Reachable {
		return fmt.Sprintf("%s: %s is unreachable from %s", ErrNoFeasiblePath, e.Goal, e.Source)
	}

	return fmt.Sprintf("%s: %s→%s needs %d coins, budget is %d",
		ErrNoFeasiblePath, e.Source, e.Goal, e.MinCoins, e.Budget)
}

// Is makes errors.Is(err, ErrNoFeasiblePath) succeed.
func (e *InfeasibleError) Is(target error) bool { return target == ErrNoFeasiblePath }

// Step is one relaxed edge of the exploration trace.
type Step struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Trace records what a search examined, in order. It is for observability
// only and never influences the result.
type Trace struct {
	// Visited lists vertices in the order they were first popped.
	Visited []string `json:"visited"`

	// Relaxed lists every relaxation that was pushed onto the frontier.
	Relaxed []Step `json:"relaxed"`
}

// clone returns a deep copy so callers may keep it across searches.
func (t Trace) clone() Trace {
	out := Trace{
		Visited: make([]string, len(t.Visited)),
		Relaxed: make([]Step, len(t.Relaxed)),
	}
	copy(out.Visited, t.Visited)
	copy(out.Relaxed, t.Relaxed)

	return out
}

// Result is the outcome of one search.
type Result struct {
	// Path lists vertices from source to goal inclusive. Nil when not found.
	Path []string `json:"path"`

	// Distance is the summed primary cost of Path.
	Distance int64 `json:"distance"`

	// Coins is the summed secondary cost of Path.
	Coins int64 `json:"coins"`

	// Trace is the exploration trace of this call.
	Trace Trace `json:"trace"`

	// Expanded counts labels popped and expanded; Pushed counts labels enqueued.
	Expanded int `json:"expanded"`
	Pushed   int `json:"pushed"`
}

// Found reports whether the result carries a path.
func (r *Result) Found() bool { return r != nil && len(r.Path) > 0 }

// Pruning selects how popped labels are compared with settled ones.
type Pruning int

const (
	// PrunePareto keeps, per vertex, the set of non-dominated (coins, distance)
	// pairs and discards any label dominated by one of them.
	PrunePareto Pruning = iota

	// PruneExact discards a label only if a label with the same vertex and the
	// same coin total was settled with an equal or smaller distance.
	PruneExact
)

// String returns "pareto" or "exact".
func (p Pruning) String() string {
	switch p {
	case PrunePareto:
		return "pareto"
	case PruneExact:
		return "exact"
	default:
		return "unknown"
	}
}

// ParsePruning maps "pareto"/"exact" to a Pruning.
func ParsePruning(s string) (Pruning, error) {
	switch s {
	case "", "pareto":
		return PrunePareto, nil
	case "exact":
		return PruneExact, nil
	default:
		return 0, fmt.Errorf("%w: pruning %q", ErrUnknownStrategy, s)
	}
}

// Options configures a search.
//
// Heuristic     – remaining-distance estimate; nil means StoredHeuristic(g).
// Pruning       – dominance policy. Default PrunePareto.
// MaxExpansions – stop after this many expansions; 0 means unlimited.
// Logger        – debug sink; discards by default.
type Options struct {
	Heuristic     Heuristic
	Pruning       Pruning
	MaxExpansions int
	Logger        *slog.Logger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithHeuristic injects the remaining-distance estimate for this query.
// It must estimate distance only and target the goal being searched.
// Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("constrained: nil heuristic")
	}

	return func(o *Options) { o.Heuristic = h }
}

// WithPruning selects the dominance policy. Panics on unknown values.
func WithPruning(p Pruning) Option {
	if p != PrunePareto && p != PruneExact {
		panic(fmt.Sprintf("constrained: unknown pruning %d", p))
	}

	return func(o *Options) { o.Pruning = p }
}

// WithMaxExpansions bounds the number of label expansions. Panics on n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic("constrained: MaxExpansions must be non-negative")
	}

	return func(o *Options) { o.MaxExpansions = n }
}

// WithLogger sets the debug logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("constrained: nil logger")
	}

	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the defaults: stored heuristic, Pareto pruning,
// unlimited expansions, discarding logger.
func DefaultOptions() Options {
	return Options{
		Pruning: PrunePareto,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
