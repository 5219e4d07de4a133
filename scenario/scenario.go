// SPDX-License-Identifier: MIT
// Package scenario reads road networks and route queries from YAML or JSON
// documents and turns them into a core.Graph.
//
// Document layout:
//
//	name: triangle
//	vertices: [{id: A, h: 0, x: 0, y: 0}, ...]
//	edges:    [{from: A, to: B, distance: 200, coins: 2}, ...]
//	queries:  [{source: A, goal: C, budget: 4, heuristic: zero, pruning: exact}, ...]
//
// Unknown fields are rejected in both formats.
package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/coinpath/core"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .json.
	ErrUnsupportedFormat = errors.New("scenario: unsupported format")

	// ErrDecode indicates a malformed document.
	ErrDecode = errors.New("scenario: decode failed")

	// ErrNotFound indicates an unknown embedded scenario name.
	ErrNotFound = errors.New("scenario: not found")
)

// Vertex describes one city.
type Vertex struct {
	ID string  `yaml:"id" json:"id"`
	H  int64   `yaml:"h" json:"h"`
	X  float64 `yaml:"x" json:"x"`
	Y  float64 `yaml:"y" json:"y"`
}

// Edge describes one two-way road.
type Edge struct {
	From     string `yaml:"from" json:"from"`
	To       string `yaml:"to" json:"to"`
	Distance int64  `yaml:"distance" json:"distance"`
	Coins    int64  `yaml:"coins" json:"coins"`
}

// Query is one budgeted route request. Heuristic and Pruning are names
// understood by constrained.ParseHeuristic and constrained.ParsePruning;
// empty means the default.
type Query struct {
	Source    string `yaml:"source" json:"source"`
	Goal      string `yaml:"goal" json:"goal"`
	Budget    int64  `yaml:"budget" json:"budget"`
	Heuristic string `yaml:"heuristic,omitempty" json:"heuristic,omitempty"`
	Pruning   string `yaml:"pruning,omitempty" json:"pruning,omitempty"`
}

// Document is a complete scenario: a graph plus the queries to run on it.
type Document struct {
	Name        string   `yaml:"name,omitempty" json:"name,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Vertices    []Vertex `yaml:"vertices" json:"vertices"`
	Edges       []Edge   `yaml:"edges" json:"edges"`
	Queries     []Query  `yaml:"queries,omitempty" json:"queries,omitempty"`
}

// Load decodes data according to ext (".yaml", ".yml" or ".json").
func Load(data []byte, ext string) (*Document, error) {
	var doc Document
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return &doc, nil
}

// LoadFile reads and decodes the document at path, choosing the format by extension.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	doc, err := Load(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return doc, nil
}

// Build creates the graph described by d. Vertices are added first, in
// document order, then edges; the first core error is returned with its
// document position.
func (d *Document) Build() (*core.Graph, error) {
	g := core.NewGraph()
	for i, v := range d.Vertices {
		if err := g.AddVertex(v.ID, v.H, core.WithPosition(v.X, v.Y)); err != nil {
			return nil, fmt.Errorf("scenario: vertices[%d] %q: %w", i, v.ID, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.Connect(e.From, e.To, e.Distance, e.Coins); err != nil {
			return nil, fmt.Errorf("scenario: edges[%d] %s-%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a document carrying the given queries.
func FromGraph(name string, g *core.Graph, queries []Query) (*Document, error) {
	doc := &Document{Name: name, Queries: queries}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("scenario: vertex %q: %w", id, err)
		}
		doc.Vertices = append(doc.Vertices, Vertex{ID: v.ID, H: v.Heuristic, X: v.X, Y: v.Y})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Distance: e.Distance, Coins: e.Coins})
	}

	return doc, nil
}

// Marshal encodes d as YAML or JSON according to ext.
func (d *Document) Marshal(ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Marshal(d)
	case ".json":
		return json.MarshalIndent(d, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
