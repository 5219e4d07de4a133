// SPDX-License-Identifier: MIT
// Package server exposes budgeted route search over one loaded graph as a
// JSON HTTP API.
//
// Routes:
//
//	GET  /healthz    liveness
//	GET  /graph      cities (with positions) and roads
//	POST /route      {source, goal, budget, heuristic?, pruning?}
//	POST /evaluate   {path}
//	POST /batch      {queries, parallel?}
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/coinpath/core"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
	maxBatchParallel  = 16
)

// Server serves one read-only graph.
type Server struct {
	g      *core.Graph
	log    *slog.Logger
	engine *gin.Engine
}

// Option configures a Server.
type Option func(*config)

type config struct {
	origins []string
}

// WithCORS allows browser clients from the given origins ("*" for any).
func WithCORS(origins ...string) Option {
	return func(c *config) { c.origins = append(c.origins, origins...) }
}

// New builds the routes for g. The graph must not be mutated while serving.
func New(g *core.Graph, logger *slog.Logger, opts ...Option) *Server {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	if len(cfg.origins) > 0 {
		cc := cors.DefaultConfig()
		if len(cfg.origins) == 1 && cfg.origins[0] == "*" {
			cc.AllowAllOrigins = true
		} else {
			cc.AllowOrigins = cfg.origins
		}
		cc.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
		r.Use(cors.New(cc))
	}

	s := &Server{g: g, log: logger, engine: r}
	r.GET("/healthz", s.handleHealth)
	r.GET("/graph", s.handleGraph)
	r.POST("/route", s.handleRoute)
	r.POST("/evaluate", s.handleEvaluate)
	r.POST("/batch", s.handleBatch)

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

// requestLogger logs one line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}
