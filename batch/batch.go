// SPDX-License-Identifier: MIT
// Package batch runs many independent budgeted route queries against one
// shared graph, optionally in parallel, and returns outcomes in input order.
//
// Each query resolves its own heuristic and pruning names and runs its own
// search, so no search state is shared between workers. The graph is only read.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coinpath/constrained"
	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/scenario"
)

// ErrNilGraph indicates Run was given a nil graph.
var ErrNilGraph = errors.New("batch: graph is nil")

// Outcome is the result of one query. Exactly one of Result.Found() or Err
// describes it; for infeasible queries both are set (Result carries the trace).
type Outcome struct {
	Index   int
	Query   scenario.Query
	Result  *constrained.Result
	Err     error
	Elapsed time.Duration
}

// Options configures Run.
//
// Parallel – number of concurrent searches; 1 runs sequentially.
// Logger   – per-query debug lines; discards by default.
// Search   – options applied to every search before per-query names.
type Options struct {
	Parallel int
	Logger   *slog.Logger
	Search   []constrained.Option
}

// Option represents a functional option for Run.
type Option func(*Options)

// WithParallel sets the number of concurrent searches. Panics on n < 1.
func WithParallel(n int) Option {
	if n < 1 {
		panic("batch: parallel must be ≥ 1")
	}

	return func(o *Options) { o.Parallel = n }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: nil logger")
	}

	return func(o *Options) { o.Logger = l }
}

// WithSearchOptions appends options passed to every search.
func WithSearchOptions(opts ...constrained.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// DefaultOptions returns sequential execution with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Parallel: 1,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Run executes queries against g. Outcomes are indexed like queries whatever
// the completion order. Query failures are reported per Outcome; Run itself
// fails only for a nil graph or a cancelled context, in which case queries
// that never started carry ctx.Err().
func Run(ctx context.Context, g *core.Graph, queries []scenario.Query, opts ...Option) ([]Outcome, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	outcomes := make([]Outcome, len(queries))
	runOne := func(ctx context.Context, i int) {
		q := queries[i]
		outcomes[i] = Outcome{Index: i, Query: q}
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			return
		}

		start := time.Now()
		res, err := solve(g, q, cfg.Search)
		outcomes[i].Result, outcomes[i].Err = res, err
		outcomes[i].Elapsed = time.Since(start)

		cfg.Logger.Debug("query done",
			slog.Int("index", i),
			slog.String("source", q.Source),
			slog.String("goal", q.Goal),
			slog.Int64("budget", q.Budget),
			slog.Bool("found", res.Found()),
			slog.Duration("elapsed", outcomes[i].Elapsed))
	}

	if cfg.Parallel > 1 {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(cfg.Parallel)
		for i := range queries {
			i := i
			eg.Go(func() error {
				runOne(egCtx, i)
				return nil
			})
		}
		_ = eg.Wait()
	} else {
		for i := range queries {
			runOne(ctx, i)
		}
	}

	return outcomes, ctx.Err()
}

// solve resolves the query's strategy names and runs one search.
func solve(g *core.Graph, q scenario.Query, base []constrained.Option) (*constrained.Result, error) {
	h, err := constrained.ParseHeuristic(q.Heuristic, g, q.Goal)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	p, err := constrained.ParsePruning(q.Pruning)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	opts := make([]constrained.Option, 0, len(base)+2)
	opts = append(opts, base...)
	opts = append(opts, constrained.WithHeuristic(h), constrained.WithPruning(p))

	return constrained.FindPath(g, q.Source, q.Goal, q.Budget, opts...)
}

// Summary counts outcomes by kind.
type Summary struct {
	Total      int `json:"total"`
	Found      int `json:"found"`
	Infeasible int `json:"infeasible"`
	Failed     int `json:"failed"`
}

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch {
		case o.Err == nil && o.Result.Found():
			s.Found++
		case errors.Is(o.Err, constrained.ErrNoFeasiblePath):
			s.Infeasible++
		default:
			s.Failed++
		}
	}

	return s
}
