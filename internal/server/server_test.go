// SPDX-License-Identifier: MIT
package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/coinpath/builder"
	"github.com/katalvlaran/coinpath/internal/server"
)

type ServerSuite struct {
	suite.Suite
	h http.Handler
}

func (s *ServerSuite) SetupSuite() {
	g, err := builder.SampleGraph()
	s.Require().NoError(err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.h = server.New(g, logger, server.WithCORS("*")).Handler()
}

func (s *ServerSuite) do(method, path, body string) (int, map[string]any) {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.h.ServeHTTP(rec, req)

	var out map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return rec.Code, out
}

func (s *ServerSuite) TestHealth() {
	code, body := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, code)
	s.Equal("ok", body["status"])
}

func (s *ServerSuite) TestGraph() {
	code, body := s.do(http.MethodGet, "/graph", "")
	s.Equal(http.StatusOK, code)
	s.Len(body["vertices"], 9)
	s.Len(body["edges"], 16)
	s.Len(body["components"], 1)
}

func (s *ServerSuite) TestRoute() {
	code, body := s.do(http.MethodPost, "/route", `{"source":"A","goal":"I","budget":8}`)
	s.Require().Equal(http.StatusOK, code)
	s.Equal([]any{"A", "E", "I"}, body["path"])
	s.Equal(560.0, body["distance"])
	s.Equal(8.0, body["coins"])
	s.NotEmpty(body["visited"])
	s.Contains(body["relaxed"], []any{"A", "E"})
}

func (s *ServerSuite) TestRoute_Strategies() {
	code, body := s.do(http.MethodPost, "/route",
		`{"source":"C","goal":"G","budget":8,"heuristic":"exact","pruning":"exact"}`)
	s.Require().Equal(http.StatusOK, code)
	s.Equal(560.0, body["distance"])
}

func (s *ServerSuite) TestRoute_Errors() {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{"source":`, http.StatusBadRequest},
		{"missing budget", `{"source":"A","goal":"I"}`, http.StatusBadRequest},
		{"unknown vertex", `{"source":"A","goal":"Z","budget":8}`, http.StatusNotFound},
		{"trivial", `{"source":"A","goal":"A","budget":8}`, http.StatusBadRequest},
		{"negative budget", `{"source":"A","goal":"I","budget":-1}`, http.StatusBadRequest},
		{"unknown heuristic", `{"source":"A","goal":"I","budget":8,"heuristic":"psychic"}`, http.StatusBadRequest},
		{"infeasible", `{"source":"A","goal":"I","budget":7}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			code, body := s.do(http.MethodPost, "/route", tc.body)
			s.Equal(tc.want, code)
			s.NotEmpty(body["error"])
		})
	}
}

func (s *ServerSuite) TestRoute_InfeasibleBody() {
	code, body := s.do(http.MethodPost, "/route", `{"source":"A","goal":"I","budget":7}`)
	s.Require().Equal(http.StatusUnprocessableEntity, code)
	s.Equal(true, body["reachable"])
	s.Equal(8.0, body["min_coins"])
}

func (s *ServerSuite) TestEvaluate() {
	code, body := s.do(http.MethodPost, "/evaluate", `{"path":["A","B","C","F","I"]}`)
	s.Require().Equal(http.StatusOK, code)
	s.Equal(800.0, body["distance"])
	s.Equal(8.0, body["coins"])

	code, _ = s.do(http.MethodPost, "/evaluate", `{"path":["A","I"]}`)
	s.Equal(http.StatusBadRequest, code)
}

func (s *ServerSuite) TestBatch() {
	code, body := s.do(http.MethodPost, "/batch", `{"parallel":2,"queries":[
		{"source":"A","goal":"I","budget":8},
		{"source":"A","goal":"I","budget":7},
		{"source":"A","goal":"Q","budget":7}]}`)
	s.Require().Equal(http.StatusOK, code)

	items, ok := body["outcomes"].([]any)
	s.Require().True(ok)
	s.Require().Len(items, 3)
	first := items[0].(map[string]any)
	s.NotNil(first["result"])
	second := items[1].(map[string]any)
	s.Equal(8.0, second["error"].(map[string]any)["min_coins"])

	s.Equal(map[string]any{"total": 3.0, "found": 1.0, "infeasible": 1.0, "failed": 1.0}, body["summary"])
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestCORSPreflight(t *testing.T) {
	g, err := builder.SampleGraph()
	require.NoError(t, err)
	h := server.New(g, slog.New(slog.NewTextHandler(io.Discard, nil)), server.WithCORS("http://localhost:3000")).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/route", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
