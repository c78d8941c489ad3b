//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package grph

import (
	"cmp"
	"fmt"
	"runtime"
	"sync"

	"github.com/Margento/BilingualCorpusJourney/internal/base/gen"
	"github.com/Margento/BilingualCorpusJourney/internal/lnch"
	"github.com/Margento/BilingualCorpusJourney/internal/vec"
	"github.com/e-gun/nlp/measures/pairwise"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Edge - one unordered pair of poems; U < V always
type Edge struct {
	U      int
	V      int
	Weight float64
}

// Other - the endpoint that is not id
func (e Edge) Other(id int) int {
	if e.U == id {
		return e.V
	}
	return e.U
}

// Rank - a node and some score attached to it
type Rank struct {
	ID    int
	Label string
	Value float64
}

// Graph - the complete similarity graph over a bilingual corpus
type Graph struct {
	docs  []vec.Document
	index map[int]int // Document.ID -> position in docs
	w     *mat.SymDense
	edges []Edge // (U,V) order
}

// Cosine - cosine similarity; a zero vector on either side yields 0 rather than NaN
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	if floats.Norm(a, 2) == 0 || floats.Norm(b, 2) == 0 {
		return 0
	}
	return pairwise.CosineSimilarity(mat.NewVecDense(len(a), a), mat.NewVecDense(len(b), b))
}

// Build - compute every pairwise similarity; rows are handed to the workers over a channel and each worker
// owns the rows it receives, so nothing is shared until the merge
func Build(docs []vec.Document, workers int, bar bool) *Graph {
	const (
		MSG1 = "Build(): %d nodes, %s edges, %d workers"
		WRN1 = "Build(): duplicate document id %d ('%s') ignored"
	)

	g := &Graph{index: make(map[int]int, len(docs))}
	for _, d := range docs {
		if _, ok := g.index[d.ID]; ok {
			Msg.WARN(fmt.Sprintf(WRN1, d.ID, d.Label))
			continue
		}
		g.index[d.ID] = len(g.docs)
		g.docs = append(g.docs, d)
	}

	n := len(g.docs)
	if n == 0 {
		return g
	}
	g.w = mat.NewSymDense(n, nil)

	if workers < 1 {
		workers = runtime.NumCPU()
	}

	var pb *progressbar.ProgressBar
	if bar {
		pb = gen.NewProgressBar(n, "similarities")
	}

	// rows[i][k] holds the weight between node i and node i+1+k
	rows := make([][]float64, n)
	feeder := make(chan int, n)
	for i := 0; i < n; i++ {
		feeder <- i
	}
	close(feeder)

	var wg sync.WaitGroup
	for j := 0; j < workers; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range feeder {
				r := make([]float64, n-i-1)
				for k := range r {
					r[k] = Cosine(g.docs[i].Vector, g.docs[i+1+k].Vector)
				}
				rows[i] = r
				if pb != nil {
					_ = pb.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	g.edges = make([]Edge, 0, n*(n-1)/2)
	for i, r := range rows {
		for k, wt := range r {
			j := i + 1 + k
			g.w.SetSym(i, j, wt)
			u, v := g.docs[i].ID, g.docs[j].ID
			if u > v {
				u, v = v, u
			}
			g.edges = append(g.edges, Edge{U: u, V: v, Weight: wt})
		}
	}
	slices.SortStableFunc(g.edges, compareuv)

	Msg.PEEK(fmt.Sprintf(MSG1, n, gen.PrettyInt(len(g.edges)), workers))
	return g
}

// New - a graph with the given weights instead of computed similarities; pairs not listed weigh 0
func New(docs []vec.Document, edges []Edge) (*Graph, error) {
	const (
		FAIL1 = "New(): edge %d-%d names an unknown node"
		FAIL2 = "New(): self loop on %d"
		FAIL3 = "New(): duplicate document id %d"
	)

	g := &Graph{index: make(map[int]int, len(docs))}
	for _, d := range docs {
		if _, ok := g.index[d.ID]; ok {
			return nil, fmt.Errorf(FAIL3, d.ID)
		}
		g.index[d.ID] = len(g.docs)
		g.docs = append(g.docs, d)
	}
	n := len(g.docs)
	if n == 0 {
		return g, nil
	}
	g.w = mat.NewSymDense(n, nil)

	for _, e := range edges {
		i, ok1 := g.index[e.U]
		j, ok2 := g.index[e.V]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf(FAIL1, e.U, e.V)
		}
		if i == j {
			return nil, fmt.Errorf(FAIL2, e.U)
		}
		g.w.SetSym(i, j, e.Weight)
	}

	g.edges = make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			u, v := g.docs[i].ID, g.docs[j].ID
			if u > v {
				u, v = v, u
			}
			g.edges = append(g.edges, Edge{U: u, V: v, Weight: g.w.At(i, j)})
		}
	}
	slices.SortStableFunc(g.edges, compareuv)
	return g, nil
}

func compareuv(a, b Edge) int {
	if c := cmp.Compare(a.U, b.U); c != 0 {
		return c
	}
	return cmp.Compare(a.V, b.V)
}

// Len - number of nodes
func (g *Graph) Len() int { return len(g.docs) }

// Docs - the nodes in the order they were given to Build
func (g *Graph) Docs() []vec.Document { return g.docs }

// Doc - the document behind a node id
func (g *Graph) Doc(id int) (vec.Document, bool) {
	i, ok := g.index[id]
	if !ok {
		return vec.Document{}, false
	}
	return g.docs[i], true
}

// Has - is id a node?
func (g *Graph) Has(id int) bool {
	_, ok := g.index[id]
	return ok
}

func (g *Graph) lang(id int) string {
	return g.docs[g.index[id]].Lang
}

func (g *Graph) label(id int) string {
	return g.docs[g.index[id]].Label
}

// Cross - do the two endpoints belong to different languages?
func (g *Graph) Cross(e Edge) bool {
	return g.lang(e.U) != g.lang(e.V)
}

// Weight - the similarity between two nodes; 0 for self pairs and unknown ids
func (g *Graph) Weight(u, v int) float64 {
	i, ok1 := g.index[u]
	j, ok2 := g.index[v]
	if !ok1 || !ok2 || i == j {
		return 0
	}
	return g.w.At(i, j)
}

// Edges - every edge in (U,V) order
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgesSorted - every edge by weight; equal weights keep (U,V) order
func (g *Graph) EdgesSorted(desc bool) []Edge {
	out := g.Edges()
	slices.SortStableFunc(out, func(a, b Edge) int {
		if desc {
			return cmp.Compare(b.Weight, a.Weight)
		}
		return cmp.Compare(a.Weight, b.Weight)
	})
	return out
}

// CrossEdges - the edges joining the two languages, heaviest first
func (g *Graph) CrossEdges() []Edge {
	var out []Edge
	for _, e := range g.EdgesSorted(true) {
		if g.Cross(e) {
			out = append(out, e)
		}
	}
	return out
}

// Incident - the edges touching id, heaviest first; equal weights are ordered by the other endpoint
func (g *Graph) Incident(id int, crossonly bool) []Edge {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	out := make([]Edge, 0, len(g.docs)-1)
	for j, d := range g.docs {
		if j == i {
			continue
		}
		if crossonly && d.Lang == g.docs[i].Lang {
			continue
		}
		u, v := id, d.ID
		if u > v {
			u, v = v, u
		}
		out = append(out, Edge{U: u, V: v, Weight: g.w.At(i, j)})
	}
	slices.SortStableFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Other(id), b.Other(id))
	})
	return out
}

// DegreeWeighted - the sum of the weights of every edge touching id
func (g *Graph) DegreeWeighted(id int) float64 {
	i, ok := g.index[id]
	if !ok {
		return 0
	}
	var s float64
	for j := range g.docs {
		if j != i {
			s += g.w.At(i, j)
		}
	}
	return s
}

// Degrees - weighted degree of every node, highest first
func (g *Graph) Degrees() []Rank {
	rr := make([]Rank, len(g.docs))
	for i, d := range g.docs {
		rr[i] = Rank{ID: d.ID, Label: d.Label, Value: g.DegreeWeighted(d.ID)}
	}
	SortRanks(rr)
	return rr
}

// SortRanks - highest value first; ties by id
func SortRanks(rr []Rank) {
	slices.SortStableFunc(rr, func(a, b Rank) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// TopRanks - at most k ranks; k < 1 means all of them
func TopRanks(rr []Rank, k int) []Rank {
	if k < 1 || k >= len(rr) {
		return rr
	}
	return rr[:k]
}
