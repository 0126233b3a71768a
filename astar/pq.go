package astar

import "github.com/ternwave/gridnav/costgrid"

// node is a transient search record: a coordinate, its accumulated cost
// from start (g), heuristic estimate to goal (h), priority (f = g + h) and
// a back-reference to its best-known predecessor. Nodes form a tree of
// predecessors for path reconstruction only and die with the call.
type node struct {
	coord  costgrid.Coord
	g      float64
	h      float64
	f      float64
	parent *node
	index  int // position in the heap
	seq    int // insertion sequence, FIFO tie-break on equal f
}

// openHeap implements heap.Interface over open-set nodes, ordered by f with
// insertion order breaking ties deterministically.
type openHeap []*node

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x interface{}) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *openHeap) Pop() interface{} {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*h = old[:last]
	return n
}
