//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package grph

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// Distance - shortest paths treat a correlation as the distance 1 - correlation, floored at zero
func Distance(w float64) float64 {
	return math.Max(0, 1-w)
}

// topology - the graph as gonum sees it; node ids are the Document ids
func (g *Graph) topology(weighted bool) graph.Graph {
	if !weighted {
		ug := simple.NewUndirectedGraph()
		for _, d := range g.docs {
			ug.AddNode(simple.Node(int64(d.ID)))
		}
		for _, e := range g.edges {
			ug.SetEdge(ug.NewEdge(simple.Node(int64(e.U)), simple.Node(int64(e.V))))
		}
		return ug
	}

	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, d := range g.docs {
		wg.AddNode(simple.Node(int64(d.ID)))
	}
	for _, e := range g.edges {
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(int64(e.U)), simple.Node(int64(e.V)), Distance(e.Weight)))
	}
	return wg
}

// Closeness - (n-1) / sum of shortest-path distances; hop counts or 1 - correlation
func (g *Graph) Closeness(weighted bool) []Rank {
	n := len(g.docs)
	if n < 2 {
		return g.ranked(nil)
	}
	t := g.topology(weighted)
	cc := network.Closeness(t, path.DijkstraAllPaths(t))
	for id, v := range cc {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			// every distance was zero
			cc[id] = 0
			continue
		}
		cc[id] = v * float64(n-1)
	}
	return g.ranked(cc)
}

// Betweenness - share of the shortest paths between other pairs that run through each node
func (g *Graph) Betweenness(weighted bool) []Rank {
	n := len(g.docs)
	if n < 3 {
		return g.ranked(nil)
	}

	var bc map[int64]float64
	if weighted {
		t := g.topology(true).(*simple.WeightedUndirectedGraph)
		bc = network.BetweennessWeighted(t, path.DijkstraAllPaths(t))
	} else {
		bc = network.Betweenness(g.topology(false))
	}

	// each unordered pair is walked from both ends
	pairs := float64((n - 1) * (n - 2))
	for id := range bc {
		bc[id] /= pairs
	}
	return g.ranked(bc)
}

// Eigenvector - the leading eigenvector of the weighted adjacency matrix, absolute values scaled to unit length
func (g *Graph) Eigenvector() []Rank {
	n := len(g.docs)
	switch n {
	case 0:
		return nil
	case 1:
		return g.ranked(map[int64]float64{int64(g.docs[0].ID): 1})
	}

	var es mat.EigenSym
	if ok := es.Factorize(g.w, true); !ok {
		Msg.WARN("Eigenvector(): eigendecomposition failed")
		return g.ranked(nil)
	}

	var ev mat.Dense
	es.VectorsTo(&ev)

	// eigenvalues come back in ascending order
	lead := mat.Col(nil, n-1, &ev)
	for i := range lead {
		lead[i] = math.Abs(lead[i])
	}
	if nm := floats.Norm(lead, 2); nm > 0 {
		floats.Scale(1/nm, lead)
	}

	ec := make(map[int64]float64, n)
	for i, d := range g.docs {
		ec[int64(d.ID)] = lead[i]
	}
	return g.ranked(ec)
}

// ranked - one Rank per node, missing ids count as zero
func (g *Graph) ranked(vals map[int64]float64) []Rank {
	rr := make([]Rank, len(g.docs))
	for i, d := range g.docs {
		rr[i] = Rank{ID: d.ID, Label: d.Label, Value: vals[int64(d.ID)]}
	}
	SortRanks(rr)
	return rr
}
