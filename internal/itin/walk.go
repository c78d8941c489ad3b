//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package itin

import (
	"fmt"

	"github.com/Margento/BilingualCorpusJourney/internal/grph"
	"github.com/Margento/BilingualCorpusJourney/internal/vv"
)

// Stop - one poem on the journey and the weight of the edge that led to it (0 for the first)
type Stop struct {
	ID     int
	Label  string
	Lang   string
	Weight float64
}

// Itinerary - the journey; Stalled means some poems were never reached and Unvisited says which
type Itinerary struct {
	Stops      []Stop
	Stalled    bool
	Unvisited  []int
	Expansions int // backtracking only
}

// IDs - the stops as node ids
func (it Itinerary) IDs() []int {
	out := make([]int, len(it.Stops))
	for i, s := range it.Stops {
		out[i] = s.ID
	}
	return out
}

// Walker - how the graph is walked; Floor excludes light cross edges, Budget caps backtracking
type Walker struct {
	Floor  float64
	Budget int
}

// DefaultWalker - every cross edge walkable and the default backtracking budget
func DefaultWalker() Walker {
	return Walker{Floor: vv.WALKFLOOR, Budget: vv.BACKTRACKBUDGET}
}

// Walk - the greedy walk with every cross edge available
func Walk(g *grph.Graph, s Seed) (Itinerary, error) {
	return DefaultWalker().Walk(g, s)
}

// WalkBacktracking - the backtracking walk with every cross edge available
func WalkBacktracking(g *grph.Graph, s Seed, budget int) (Itinerary, error) {
	w := DefaultWalker()
	w.Budget = budget
	return w.WalkBacktracking(g, s)
}

// Walk - from the seed, always take the heaviest cross edge to a poem not yet visited; stop when there is none
func (w Walker) Walk(g *grph.Graph, s Seed) (Itinerary, error) {
	if err := check(g, s); err != nil {
		return Itinerary{}, err
	}

	path := []int{s.U, s.V}
	seen := map[int]bool{s.U: true, s.V: true}
	adj := w.adjacency(g)

	cur := s.V
	for len(path) < g.Len() {
		next := -1
		for _, e := range adj[cur] {
			if o := e.Other(cur); !seen[o] {
				next = o
				break
			}
		}
		if next < 0 {
			break
		}
		path = append(path, next)
		seen[next] = true
		cur = next
	}

	it := itinerary(g, path)
	report("Walk()", it)
	return it, nil
}

// adjacency - per node, the walkable cross edges, heaviest first
func (w Walker) adjacency(g *grph.Graph) map[int][]grph.Edge {
	adj := make(map[int][]grph.Edge, g.Len())
	for _, d := range g.Docs() {
		all := g.Incident(d.ID, true)
		keep := all[:0]
		for _, e := range all {
			if e.Weight < w.Floor {
				// Incident() is sorted: nothing lighter can pass either
				break
			}
			keep = append(keep, e)
		}
		adj[d.ID] = keep
	}
	return adj
}

func itinerary(g *grph.Graph, path []int) Itinerary {
	var it Itinerary
	onpath := make(map[int]bool, len(path))
	for i, id := range path {
		d, _ := g.Doc(id)
		st := Stop{ID: id, Label: d.Label, Lang: d.Lang}
		if i > 0 {
			st.Weight = g.Weight(path[i-1], id)
		}
		it.Stops = append(it.Stops, st)
		onpath[id] = true
	}
	for _, d := range g.Docs() {
		if !onpath[d.ID] {
			it.Unvisited = append(it.Unvisited, d.ID)
		}
	}
	it.Stalled = len(it.Unvisited) > 0
	return it
}

func report(fn string, it Itinerary) {
	const (
		MSG1 = "%s: %d poems visited"
		WRN1 = "%s: stalled after %d poems; %d never reached"
	)
	if it.Stalled {
		Msg.WARN(fmt.Sprintf(WRN1, fn, len(it.Stops), len(it.Unvisited)))
		return
	}
	Msg.PEEK(fmt.Sprintf(MSG1, fn, len(it.Stops)))
}
