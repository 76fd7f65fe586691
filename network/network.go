package network

import (
	"evogamesim/interfaces"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is an undirected simple graph frozen at construction.
// Node and neighbor slices are cached in ascending id order, so concurrent readers are safe.
type Graph struct {
	g         *simple.UndirectedGraph
	nodes     []int64
	adjacency map[int64][]int64
	edges     int
}

// Summary describes a graph in the result overview.
type Summary struct {
	Type       string  `json:"type"`
	Nodes      int     `json:"nodes"`
	Edges      int     `json:"edges"`
	MeanDegree float64 `json:"meanDegree"`
	MaxDegree  int     `json:"maxDegree"`
	Isolated   int     `json:"isolated"`
	Components int     `json:"components"`
}

func (n *Graph) Nodes() []int64 {
	return n.nodes
}

func (n *Graph) Neighbors(node int64) []int64 {
	return n.adjacency[node]
}

func (n *Graph) Degree(node int64) int {
	return len(n.adjacency[node])
}

func (n *Graph) EdgeCount() int {
	return n.edges
}

func (n *Graph) HasEdge(a int64, b int64) bool {
	return n.g.HasEdgeBetween(a, b)
}

// Components returns the connected components, each sorted by node id.
func (n *Graph) Components() [][]int64 {
	components := topo.ConnectedComponents(n.g)
	out := make([][]int64, 0, len(components))
	for _, component := range components {
		ids := make([]int64, 0, len(component))
		for _, node := range component {
			ids = append(ids, node.ID())
		}
		sortIds(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i][0] < out[j][0]
	})
	return out
}

func (n *Graph) Summary(nType interfaces.INetworkType) Summary {
	s := Summary{
		Type:       nType.String(),
		Nodes:      len(n.nodes),
		Edges:      n.edges,
		Components: len(n.Components()),
	}
	for _, id := range n.nodes {
		d := n.Degree(id)
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolated++
		}
	}
	if s.Nodes > 0 {
		s.MeanDegree = 2 * float64(s.Edges) / float64(s.Nodes)
	}
	return s
}

// FromEdges builds a graph over the given nodes, self loops and unknown endpoints are rejected.
func FromEdges(nodes []int64, edges [][2]int64) (*Graph, error) {
	b := &builder{g: simple.NewUndirectedGraph()}
	for _, id := range nodes {
		if b.g.Node(id) != nil {
			return nil, fmt.Errorf("%w: duplicate node %v", interfaces.ErrInvalidParameters, id)
		}
		b.g.AddNode(simple.Node(id))
	}
	for _, e := range edges {
		if e[0] == e[1] {
			return nil, fmt.Errorf("%w: self loop on node %v", interfaces.ErrInvalidParameters, e[0])
		}
		if b.g.Node(e[0]) == nil || b.g.Node(e[1]) == nil {
			return nil, fmt.Errorf("%w: edge %v-%v references an unknown node", interfaces.ErrInvalidParameters, e[0], e[1])
		}
		b.connect(e[0], e[1])
	}
	return b.freeze(), nil
}

// builder collects edges before the graph is frozen
type builder struct {
	g *simple.UndirectedGraph
}

func newBuilder(n int) *builder {
	b := &builder{g: simple.NewUndirectedGraph()}
	for i := 0; i < n; i++ {
		b.g.AddNode(simple.Node(int64(i)))
	}
	return b
}

// connect adds the edge a-b unless it is a self loop or already present
func (b *builder) connect(a int64, c int64) bool {
	if a == c || b.g.HasEdgeBetween(a, c) {
		return false
	}
	b.g.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(c)})
	return true
}

func (b *builder) disconnect(a int64, c int64) {
	b.g.RemoveEdge(a, c)
}

func (b *builder) degree(id int64) int {
	return b.g.From(id).Len()
}

func (b *builder) freeze() *Graph {
	n := &Graph{g: b.g, adjacency: make(map[int64][]int64)}
	it := b.g.Nodes()
	for it.Next() {
		n.nodes = append(n.nodes, it.Node().ID())
	}
	sortIds(n.nodes)
	for _, id := range n.nodes {
		neighbors := make([]int64, 0)
		from := b.g.From(id)
		for from.Next() {
			neighbors = append(neighbors, from.Node().ID())
		}
		sortIds(neighbors)
		n.adjacency[id] = neighbors
		n.edges += len(neighbors)
	}
	n.edges /= 2
	return n
}

func sortIds(ids []int64) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
}
