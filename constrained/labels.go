// SPDX-License-Identifier: MIT
package constrained

import "sort"

// noParent marks the root label in the arena.
const noParent = -1

// label is one search state: a vertex reached with given coin and distance
// totals. Labels live in an append-only arena and point at their parent by
// index, so path reconstruction needs no per-label path copies.
type label struct {
	vertex string
	coins  int64  // cumulative secondary cost
	dist   int64  // cumulative primary cost
	f      int64  // dist + heuristic(vertex)
	seq    uint64 // push order, breaks f ties (first pushed wins)
	parent int    // arena index of the predecessor label, or noParent
}

// labelPQ is a min-heap of arena indices ordered by (f, seq).
type labelPQ struct {
	arena *[]label
	items []int
}

// Len returns the number of queued labels.
func (pq labelPQ) Len() int { return len(pq.items) }

// Less orders by f, then by push sequence.
func (pq labelPQ) Less(i, j int) bool {
	a, b := &(*pq.arena)[pq.items[i]], &(*pq.arena)[pq.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}

// Swap swaps two queued labels.
func (pq labelPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends an arena index; called by heap.Push.
func (pq *labelPQ) Push(x interface{}) { pq.items = append(pq.items, x.(int)) }

// Pop removes the last arena index; called by heap.Pop.
func (pq *labelPQ) Pop() interface{} {
	n := len(pq.items)
	idx := pq.items[n-1]
	pq.items = pq.items[:n-1]

	return idx
}

// settled decides whether a label is redundant given the labels already
// expanded, and records labels that are about to be expanded.
type settled interface {
	// dominated reports whether (v, coins, dist) adds nothing over settled labels.
	dominated(v string, coins, dist int64) bool
	// settle records (v, coins, dist) as expanded.
	settle(v string, coins, dist int64)
}

// stateKey identifies a (vertex, coins) pair for exact-match pruning.
type stateKey struct {
	vertex string
	coins  int64
}

// exactTable keeps the best distance per (vertex, coins) pair.
type exactTable map[stateKey]int64

func (t exactTable) dominated(v string, coins, dist int64) bool {
	best, ok := t[stateKey{v, coins}]

	return ok && best <= dist
}

func (t exactTable) settle(v string, coins, dist int64) {
	t[stateKey{v, coins}] = dist
}

// point is one non-dominated (coins, dist) pair.
type point struct {
	coins, dist int64
}

// paretoSets keeps, per vertex, a slice of non-dominated points sorted by
// coins ascending; distances are then strictly descending.
type paretoSets map[string][]point

// dominated reports whether some settled point at v has coins ≤ and dist ≤.
// The point with the largest coins not above the query has the smallest
// distance among all candidates, so one binary search suffices.
func (p paretoSets) dominated(v string, coins, dist int64) bool {
	pts := p[v]
	i := sort.Search(len(pts), func(i int) bool { return pts[i].coins > coins })
	if i == 0 {
		return false
	}

	return pts[i-1].dist <= dist
}

// settle inserts a point that is not dominated, evicting the points it dominates.
// Evicted points form a contiguous run starting at the insertion index.
func (p paretoSets) settle(v string, coins, dist int64) {
	pts := p[v]
	i := sort.Search(len(pts), func(i int) bool { return pts[i].coins >= coins })
	j := i
	for j < len(pts) && pts[j].dist >= dist {
		j++
	}

	out := make([]point, 0, len(pts)-(j-i)+1)
	out = append(out, pts[:i]...)
	out = append(out, point{coins: coins, dist: dist})
	out = append(out, pts[j:]...)
	p[v] = out
}

// newSettled returns the bookkeeping for the requested pruning mode.
func newSettled(mode Pruning) settled {
	if mode == PruneExact {
		return exactTable{}
	}

	return paretoSets{}
}
