package lib

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// valueNodeID packs a (cellIndex, value) pair into the single int64 node
// ID that forcingValues and contradictionGraph key on. cellIndex ranges
// 0-80 and value 1-9, so the packed ID is always unique and trivially
// invertible — no separate lookup table is needed to go from a graph node
// back to the pair it represents.
func valueNodeID(cellIndex, value int) int64 {
	return int64(cellIndex*10 + value)
}

func unpackValueNodeID(id int64) (cellIndex, value int) {
	return int(id / 10), int(id % 10)
}

// valueGraphs bundles the engine's three graphs: seen (undirected, over
// cell indices) and the two (cell, value) graphs spec.md §3 describes,
// forcingValues (directed, "assigning a implies b") and
// contradictionGraph (undirected, "these two cannot both hold").
//
// All three are backed by gonum.org/v1/gonum/graph/simple, the same package the
// retrieved gonum sudoku-via-graph-coloring example builds its constraint
// graph with.
type valueGraphs struct {
	seen          *simple.UndirectedGraph // nodes = cell indices
	forcingValues *simple.DirectedGraph   // nodes = packed (cell, value)
	contradiction *simple.UndirectedGraph // nodes = packed (cell, value)
}

func newValueGraphs() *valueGraphs {
	return &valueGraphs{
		seen:          simple.NewUndirectedGraph(),
		forcingValues: simple.NewDirectedGraph(),
		contradiction: simple.NewUndirectedGraph(),
	}
}

func (g *valueGraphs) addSeenEdge(c1, c2 int) {
	ensureNode(g.seen, int64(c1))
	ensureNode(g.seen, int64(c2))
	if c1 != c2 && !g.seen.HasEdgeBetween(int64(c1), int64(c2)) {
		g.seen.SetEdge(simple.Edge{F: simple.Node(c1), T: simple.Node(c2)})
	}
}

func (g *valueGraphs) seenNeighbours(cellIndex int) []int {
	if g.seen.Node(int64(cellIndex)) == nil {
		return nil
	}
	it := g.seen.From(int64(cellIndex))
	out := make([]int, 0, it.Len())
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	return out
}

// addForcingEdge records "assigning (c1,v1) implies (c2,v2)".
func (g *valueGraphs) addForcingEdge(c1, v1, c2, v2 int) {
	from, to := valueNodeID(c1, v1), valueNodeID(c2, v2)
	ensureNode(g.forcingValues, from)
	ensureNode(g.forcingValues, to)
	if !g.forcingValues.HasEdgeFromTo(from, to) {
		g.forcingValues.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
	}
}

// addContradictionEdge records "(c1,v1) and (c2,v2) cannot both hold".
func (g *valueGraphs) addContradictionEdge(c1, v1, c2, v2 int) {
	a, b := valueNodeID(c1, v1), valueNodeID(c2, v2)
	if a == b {
		return
	}
	ensureNode(g.contradiction, a)
	ensureNode(g.contradiction, b)
	if !g.contradiction.HasEdgeBetween(a, b) {
		g.contradiction.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
	}
}

// dropValueNode removes the single (cellIndex, value) node from both
// value graphs when that candidate is removed; dropAllValueNodesForCell
// below removes every (cellIndex, *) node when a cell is finalised.
func (g *valueGraphs) dropValueNode(cellIndex, value int) {
	id := valueNodeID(cellIndex, value)
	g.forcingValues.RemoveNode(id)
	g.contradiction.RemoveNode(id)
}

func (g *valueGraphs) dropAllValueNodesForCell(cellIndex int, possibles map[int]bool) {
	for v := 1; v <= 9; v++ {
		g.dropValueNode(cellIndex, v)
	}
	_ = possibles
}

// reachableInForcingGraph returns the set of (cell,value) node IDs
// reachable from the given node by following forcingValues edges,
// including the start node itself. This is the BFS closure spec.md §4.6
// and §4.7 both build on: §4.6 uses it to look for a contradiction-graph
// edge inside the reachable set, §4.7 uses its size to rank bifurcation
// targets.
func (g *valueGraphs) reachableInForcingGraph(start int64) map[int64]bool {
	visited := map[int64]bool{start: true}
	queue := []int64{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if g.forcingValues.Node(id) == nil {
			continue
		}
		it := g.forcingValues.From(id)
		for it.Next() {
			next := it.Node().ID()
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// hasInducedContradictionEdge reports whether any two nodes in `nodes`
// are joined by an edge in the contradiction graph.
func (g *valueGraphs) hasInducedContradictionEdge(nodes map[int64]bool) bool {
	for id := range nodes {
		if g.contradiction.Node(id) == nil {
			continue
		}
		it := g.contradiction.From(id)
		for it.Next() {
			if other := it.Node().ID(); nodes[other] {
				return true
			}
		}
	}
	return false
}

// clone deep-copies all three graphs node-for-node and edge-for-edge,
// used by Board.Clone so parent and child never share gonum graph state.
func (g *valueGraphs) clone() *valueGraphs {
	return &valueGraphs{
		seen:          cloneUndirected(g.seen),
		forcingValues: cloneDirected(g.forcingValues),
		contradiction: cloneUndirected(g.contradiction),
	}
}

func cloneUndirected(src *simple.UndirectedGraph) *simple.UndirectedGraph {
	dst := simple.NewUndirectedGraph()
	nodes := src.Nodes()
	for nodes.Next() {
		dst.AddNode(simple.Node(nodes.Node().ID()))
	}
	edges := src.Edges()
	for edges.Next() {
		e := edges.Edge()
		dst.SetEdge(simple.Edge{F: simple.Node(e.From().ID()), T: simple.Node(e.To().ID())})
	}
	return dst
}

func cloneDirected(src *simple.DirectedGraph) *simple.DirectedGraph {
	dst := simple.NewDirectedGraph()
	nodes := src.Nodes()
	for nodes.Next() {
		dst.AddNode(simple.Node(nodes.Node().ID()))
	}
	edges := src.Edges()
	for edges.Next() {
		e := edges.Edge()
		dst.SetEdge(simple.Edge{F: simple.Node(e.From().ID()), T: simple.Node(e.To().ID())})
	}
	return dst
}

func ensureNode(g interface {
	Node(int64) graph.Node
	AddNode(graph.Node)
}, id int64) {
	if g.Node(id) == nil {
		g.AddNode(simple.Node(id))
	}
}
