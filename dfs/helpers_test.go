package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/space"
)

// label is a node name used as an action descriptor.
type label string

func (l label) String() string { return string(l) }

// graph is an explicit adjacency list; successor order is insertion order.
type graph map[string][]string

// edge adds u→v.
func (g graph) edge(u, v string) graph {
	g[u] = append(g[u], v)
	return g
}

// both adds u→v and v→u.
func (g graph) both(u, v string) graph {
	return g.edge(u, v).edge(v, u)
}

func (g graph) at(id string) node { return node{g: g, id: id} }

// node is a space.State positioned on one vertex of a graph.
type node struct {
	g  graph
	id string
}

func (n node) Key() string { return n.id }

func (n node) Equal(other space.State) bool {
	o, ok := other.(node)
	return ok && o.id == n.id
}

func (n node) Successors() []space.Transition {
	out := make([]space.Transition, 0, len(n.g[n.id]))
	for _, v := range n.g[n.id] {
		out = append(out, space.Transition{
			Action: space.UnitAction(label(n.id), label(v)),
			Next:   node{g: n.g, id: v},
		})
	}
	return out
}

func isAt(id string) space.Goal {
	return func(s space.State) bool { return s.Key() == id }
}

// diamond builds A→{B,C}, B→D, C→D, D→{E,F}.
func diamond() graph {
	return graph{}.
		edge("A", "B").edge("A", "C").
		edge("B", "D").edge("C", "D").
		edge("D", "E").edge("D", "F")
}

// line builds the undirected path v0–v1–…–vn.
func line(n int) graph {
	g := graph{}
	for i := 0; i < n; i++ {
		g.both(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	return g
}

// ids returns the keys of states in order.
func ids(states []space.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.Key()
	}
	return out
}

// hops renders a policy as the visited node names, start first.
func hops(start string, p space.Policy) []string {
	out := []string{start}
	for _, a := range p {
		out = append(out, a.Target().String())
	}
	return out
}
