package clique_test

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/core"
)

// The oracles below are written independently of the engine and share only
// the adjacency lookups. They are the completeness reference of the tests.

// oracleNoPivot is textbook Bron–Kerbosch without pivoting: it branches on
// every candidate of P.
func oracleNoPivot(g *core.Graph, minSize int) []clique.Clique {
	var out []clique.Clique
	var rec func(r []core.VertexID, p, x map[core.VertexID]bool)
	rec = func(r []core.VertexID, p, x map[core.VertexID]bool) {
		if len(p) == 0 && len(x) == 0 {
			if len(r) >= minSize {
				out = append(out, sortedCopy(r))
			}
			return
		}
		for _, v := range keysOf(p) {
			np, nx := map[core.VertexID]bool{}, map[core.VertexID]bool{}
			for w := range p {
				if w != v && g.HasEdge(v, w) {
					np[w] = true
				}
			}
			for w := range x {
				if w != v && g.HasEdge(v, w) {
					nx[w] = true
				}
			}
			rec(append(append([]core.VertexID{}, r...), v), np, nx)
			delete(p, v)
			x[v] = true
		}
	}
	p := map[core.VertexID]bool{}
	for _, v := range g.Vertices() {
		p[v] = true
	}
	rec(nil, p, map[core.VertexID]bool{})
	clique.SortCliques(out)

	return out
}

// oracleLocalPivot pivots on the vertex of P ∪ X with the most neighbors
// inside P (Tomita's rule) and breaks ties towards the largest ID, which is
// a different pivot policy from the engine's.
func oracleLocalPivot(g *core.Graph, minSize int) []clique.Clique {
	var out []clique.Clique
	var rec func(r []core.VertexID, p, x map[core.VertexID]bool)
	rec = func(r []core.VertexID, p, x map[core.VertexID]bool) {
		if len(p) == 0 && len(x) == 0 {
			if len(r) >= minSize {
				out = append(out, sortedCopy(r))
			}
			return
		}
		var pivot core.VertexID
		best := -1
		for _, set := range []map[core.VertexID]bool{p, x} {
			for u := range set {
				cnt := 0
				for w := range p {
					if w != u && g.HasEdge(u, w) {
						cnt++
					}
				}
				if cnt > best || (cnt == best && u > pivot) {
					pivot, best = u, cnt
				}
			}
		}
		var cands []core.VertexID
		for _, v := range keysOf(p) {
			if v == pivot || !g.HasEdge(pivot, v) {
				cands = append(cands, v)
			}
		}
		for _, v := range cands {
			np, nx := map[core.VertexID]bool{}, map[core.VertexID]bool{}
			for w := range p {
				if w != v && g.HasEdge(v, w) {
					np[w] = true
				}
			}
			for w := range x {
				if w != v && g.HasEdge(v, w) {
					nx[w] = true
				}
			}
			rec(append(append([]core.VertexID{}, r...), v), np, nx)
			delete(p, v)
			x[v] = true
		}
	}
	p := map[core.VertexID]bool{}
	for _, v := range g.Vertices() {
		p[v] = true
	}
	rec(nil, p, map[core.VertexID]bool{})
	clique.SortCliques(out)

	return out
}

// oracleGonum runs gonum's BronKerbosch on an equivalent simple graph.
// gonum reports nothing for an empty graph, so callers use minSize ≥ 1.
func oracleGonum(g *core.Graph, minSize int) []clique.Clique {
	sg := simple.NewUndirectedGraph()
	for _, v := range g.Vertices() {
		sg.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.Edges() {
		if e.U == e.V {
			continue
		}
		sg.SetEdge(simple.Edge{F: simple.Node(int64(e.U)), T: simple.Node(int64(e.V))})
	}

	var out []clique.Clique
	for _, nodes := range topo.BronKerbosch(sg) {
		if len(nodes) < minSize {
			continue
		}
		c := make([]core.VertexID, 0, len(nodes))
		for _, n := range nodes {
			c = append(c, core.VertexID(n.ID()))
		}
		out = append(out, sortedCopy(c))
	}
	clique.SortCliques(out)

	return out
}

func keysOf(m map[core.VertexID]bool) []core.VertexID {
	s := core.NewVertexSet()
	for v := range m {
		s.Add(v)
	}

	return s.Sorted()
}

func sortedCopy(ids []core.VertexID) clique.Clique {
	return clique.Clique(core.NewVertexSet(ids...).Sorted())
}
