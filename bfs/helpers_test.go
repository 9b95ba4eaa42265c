package bfs_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/statespace/space"
)

// label is a vertex name used as an action descriptor.
type label string

func (l label) String() string { return string(l) }

// graph is an explicit adjacency list used to drive the engine in tests.
// Neighbor order is kept as inserted.
type graph map[string][]string

// undirected adds u–v in both directions.
func (g graph) undirected(u, v string) graph {
	g[u] = append(g[u], v)
	g[v] = append(g[v], u)
	return g
}

// directed adds u→v only.
func (g graph) directed(u, v string) graph {
	g[u] = append(g[u], v)
	if _, ok := g[v]; !ok {
		g[v] = nil
	}
	return g
}

// at returns the state positioned on id.
func (g graph) at(id string) vertex { return vertex{g: g, id: id} }

// vertex is a space.State positioned on one vertex of a graph.
type vertex struct {
	g  graph
	id string
}

func (v vertex) Key() string { return v.id }

func (v vertex) Equal(other space.State) bool {
	o, ok := other.(vertex)
	return ok && o.id == v.id
}

func (v vertex) Successors() []space.Transition {
	out := make([]space.Transition, 0, len(v.g[v.id]))
	for _, n := range v.g[v.id] {
		out = append(out, space.Transition{
			Action: space.UnitAction(label(v.id), label(n)),
			Next:   vertex{g: v.g, id: n},
		})
	}
	return out
}

// isAt returns a goal accepting the vertex id.
func isAt(id string) space.Goal {
	return func(s space.State) bool { return s.Key() == id }
}

// chain builds v0→v1→…→vn as an undirected path.
func chain(n int) graph {
	g := graph{}
	for i := 0; i < n; i++ {
		g.undirected(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	return g
}

// grid builds an m×m 4-connected grid with ids "i_j".
func grid(m int) graph {
	g := graph{}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			if j+1 < m {
				g.undirected(id, fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < m {
				g.undirected(id, fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}
	return g
}

// hops renders a policy as the visited vertex names, start first.
func hops(start string, p space.Policy) []string {
	out := []string{start}
	for _, a := range p {
		out = append(out, a.Target().String())
	}
	return out
}

// keys returns the sorted keys of states.
func keys(states []space.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.Key()
	}
	sort.Strings(out)
	return out
}
