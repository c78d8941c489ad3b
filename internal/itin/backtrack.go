//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package itin

import (
	"fmt"

	"github.com/Margento/BilingualCorpusJourney/internal/grph"
)

// WalkBacktracking - depth first search in the greedy walk's order: the first path it finds is the greedy one,
// and it backs up whenever a path stalls short of the longest path the languages allow; after Budget
// expansions it settles for the longest path seen
func (w Walker) WalkBacktracking(g *grph.Graph, s Seed) (Itinerary, error) {
	const (
		MSG1 = "WalkBacktracking(): budget of %d expansions spent"
	)

	if err := check(g, s); err != nil {
		return Itinerary{}, err
	}

	adj := w.adjacency(g)
	target := reachable(g, s)

	path := []int{s.U, s.V}
	seen := map[int]bool{s.U: true, s.V: true}
	best := append([]int(nil), path...)
	expansions := 0
	spent := false

	var dfs func(cur int) bool
	dfs = func(cur int) bool {
		if len(path) > len(best) {
			best = append(best[:0], path...)
		}
		if len(path) >= target {
			return true
		}
		for _, e := range adj[cur] {
			o := e.Other(cur)
			if seen[o] {
				continue
			}
			if w.Budget > 0 && expansions >= w.Budget {
				spent = true
				return true
			}
			expansions++
			path = append(path, o)
			seen[o] = true
			if dfs(o) {
				return true
			}
			path = path[:len(path)-1]
			delete(seen, o)
		}
		return false
	}
	dfs(s.V)

	if spent {
		Msg.NOTE(fmt.Sprintf(MSG1, w.Budget))
	}

	it := itinerary(g, best)
	it.Expansions = expansions
	report("WalkBacktracking()", it)
	return it, nil
}

// reachable - no alternating path can outlast the scarcer language: with two languages and the walk
// resuming from V, the count of poems left on each side caps the length
func reachable(g *grph.Graph, s Seed) int {
	count := make(map[string]int)
	for _, d := range g.Docs() {
		count[d.Lang]++
	}
	if len(count) != 2 {
		return g.Len()
	}

	dv, _ := g.Doc(s.V)
	du, _ := g.Doc(s.U)
	// the next stop is in U's language, the one after in V's
	nextside := count[du.Lang] - 1
	thisside := count[dv.Lang] - 1

	more := 2 * thisside
	if nextside > thisside {
		more++
	} else {
		more = 2 * nextside
	}
	return 2 + more
}
