// SPDX-License-Identifier: MIT
// Package: coinpath/builder
//
// impl_cities.go - the two fixed 3×3 city maps.
//
// Layout (positions in layout units, heuristic in parentheses):
//
//	A(1) 100,100   B(2) 300,100   C(3) 500,100
//	D(4) 100,300   E(5) 300,300   F(6) 500,300
//	G(7) 100,500   H(8) 300,500   I(9) 500,500
//
// Roads: six horizontal, six vertical, four diagonals through E.
// Emission order is fixed: horizontal, vertical, diagonal.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coinpath/core"
)

// CityMap names a fixed city map.
type CityMap int

const (
	// CityMapSample prices roads proportionally to their length.
	CityMapSample CityMap = iota
	// CityMapTradeoff makes short roads expensive and long roads cheap.
	CityMapTradeoff
)

const methodCities = "Cities"

// String returns "sample" or "tradeoff".
func (m CityMap) String() string {
	switch m {
	case CityMapSample:
		return "sample"
	case CityMapTradeoff:
		return "tradeoff"
	default:
		return fmt.Sprintf("CityMap(%d)", int(m))
	}
}

// ParseCityMap maps "sample"/"tradeoff" to a CityMap.
func ParseCityMap(name string) (CityMap, error) {
	switch name {
	case "sample":
		return CityMapSample, nil
	case "tradeoff":
		return CityMapTradeoff, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCityMap, name)
	}
}

type city struct {
	id   string
	h    int64
	x, y float64
}

type road struct {
	a, b  string
	dist  int64
	coins int64
}

var cities = []city{
	{"A", 1, 100, 100}, {"B", 2, 300, 100}, {"C", 3, 500, 100},
	{"D", 4, 100, 300}, {"E", 5, 300, 300}, {"F", 6, 500, 300},
	{"G", 7, 100, 500}, {"H", 8, 300, 500}, {"I", 9, 500, 500},
}

// roadsFor prices the fixed road layout for m.
func roadsFor(m CityMap) ([]road, error) {
	var horizontal, vertical, diagonal road
	switch m {
	case CityMapSample:
		horizontal = road{dist: 200, coins: 2}
		vertical = road{dist: 200, coins: 2}
		diagonal = road{dist: 280, coins: 4}
	case CityMapTradeoff:
		horizontal = road{dist: 200, coins: 5}
		vertical = road{dist: 200, coins: 3}
		diagonal = road{dist: 280, coins: 9}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCityMap, m)
	}

	layout := []struct {
		a, b  string
		price road
	}{
		{"A", "B", horizontal}, {"B", "C", horizontal},
		{"D", "E", horizontal}, {"E", "F", horizontal},
		{"G", "H", horizontal}, {"H", "I", horizontal},

		{"A", "D", vertical}, {"B", "E", vertical}, {"C", "F", vertical},
		{"D", "G", vertical}, {"E", "H", vertical}, {"F", "I", vertical},

		{"A", "E", diagonal}, {"C", "E", diagonal},
		{"E", "G", diagonal}, {"E", "I", diagonal},
	}

	out := make([]road, 0, len(layout))
	for _, l := range layout {
		out = append(out, road{a: l.a, b: l.b, dist: l.price.dist, coins: l.price.coins})
	}

	return out, nil
}

// Cities returns a Constructor that adds the fixed city map m.
// Builder options do not affect it.
func Cities(m CityMap) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		roads, err := roadsFor(m)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCities, err)
		}

		for _, c := range cities {
			if err := g.AddVertex(c.id, c.h, core.WithPosition(c.x, c.y)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCities, c.id, err)
			}
		}
		for _, r := range roads {
			if _, err := g.Connect(r.a, r.b, r.dist, r.coins); err != nil {
				return fmt.Errorf("%s: Connect(%s-%s): %w", methodCities, r.a, r.b, err)
			}
		}

		return nil
	}
}
