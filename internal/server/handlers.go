// SPDX-License-Identifier: MIT
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/coinpath/batch"
	"github.com/katalvlaran/coinpath/bfs"
	"github.com/katalvlaran/coinpath/constrained"
	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/scenario"
)

type routeRequest struct {
	Source    string `json:"source" binding:"required"`
	Goal      string `json:"goal" binding:"required"`
	Budget    *int64 `json:"budget" binding:"required"`
	Heuristic string `json:"heuristic"`
	Pruning   string `json:"pruning"`
}

type routeResponse = constrained.Report

type errorResponse struct {
	Error     string `json:"error"`
	Reachable *bool  `json:"reachable,omitempty"`
	MinCoins  *int64 `json:"min_coins,omitempty"`
}

type evaluateRequest struct {
	Path []string `json:"path" binding:"required"`
}

type batchRequest struct {
	Queries  []scenario.Query `json:"queries" binding:"required"`
	Parallel int              `json:"parallel"`
}

type batchItem struct {
	Query  scenario.Query `json:"query"`
	Result *routeResponse `json:"result,omitempty"`
	Error  *errorResponse `json:"error,omitempty"`
}

type graphResponse struct {
	Vertices   []scenario.Vertex `json:"vertices"`
	Edges      []scenario.Edge   `json:"edges"`
	Components [][]string        `json:"components"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleGraph(c *gin.Context) {
	doc, err := scenario.FromGraph("", s.g, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	comps, err := bfs.Components(s.g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, graphResponse{Vertices: doc.Vertices, Edges: doc.Edges, Components: comps})
}

func (s *Server) handleRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res, err := s.search(scenario.Query{
		Source:    req.Source,
		Goal:      req.Goal,
		Budget:    *req.Budget,
		Heuristic: req.Heuristic,
		Pruning:   req.Pruning,
	})
	if err != nil {
		status, body := classify(err)
		s.log.Debug("route failed", slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	d, coins, err := constrained.Evaluate(s.g, req.Path)
	if err != nil {
		status, body := classify(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": req.Path, "distance": d, "coins": coins})
}

func (s *Server) handleBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	parallel := min(max(req.Parallel, 1), maxBatchParallel)

	outcomes, err := batch.Run(c.Request.Context(), s.g, req.Queries,
		batch.WithParallel(parallel), batch.WithLogger(s.log))
	if err != nil {
		status, body := classify(err)
		c.JSON(status, body)
		return
	}

	items := make([]batchItem, len(outcomes))
	for i, o := range outcomes {
		items[i].Query = o.Query
		if o.Err != nil {
			_, body := classify(o.Err)
			items[i].Error = &body
			continue
		}
		resp := toResponse(o.Result)
		items[i].Result = &resp
	}
	c.JSON(http.StatusOK, gin.H{"outcomes": items, "summary": batch.Summarize(outcomes)})
}

// search resolves the query's strategies and runs it.
func (s *Server) search(q scenario.Query) (*constrained.Result, error) {
	h, err := constrained.ParseHeuristic(q.Heuristic, s.g, q.Goal)
	if err != nil {
		return nil, err
	}
	p, err := constrained.ParsePruning(q.Pruning)
	if err != nil {
		return nil, err
	}

	return constrained.FindPath(s.g, q.Source, q.Goal, q.Budget,
		constrained.WithHeuristic(h),
		constrained.WithPruning(p),
		constrained.WithLogger(s.log))
}

// classify maps search errors to HTTP statuses.
func classify(err error) (int, errorResponse) {
	body := errorResponse{Error: err.Error()}
	var ie *constrained.InfeasibleError
	switch {
	case errors.As(err, &ie):
		body.Reachable = &ie.Reachable
		if ie.Reachable {
			body.MinCoins = &ie.MinCoins
		}
		return http.StatusUnprocessableEntity, body
	case errors.Is(err, core.ErrVertexNotFound):
		return http.StatusNotFound, body
	case errors.Is(err, constrained.ErrTrivialQuery),
		errors.Is(err, constrained.ErrNegativeBudget),
		errors.Is(err, constrained.ErrUnknownStrategy),
		errors.Is(err, constrained.ErrEmptyPath),
		errors.Is(err, constrained.ErrNotAdjacent):
		return http.StatusBadRequest, body
	default:
		return http.StatusInternalServerError, body
	}
}

func toResponse(res *constrained.Result) routeResponse {
	return constrained.NewReport(res, nil)
}
