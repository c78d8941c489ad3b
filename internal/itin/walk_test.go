//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package itin_test

import (
	"errors"
	"fmt"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Margento/BilingualCorpusJourney/internal/grph"
	"github.com/Margento/BilingualCorpusJourney/internal/itin"
	"github.com/Margento/BilingualCorpusJourney/internal/vec"
)

// poems - ids in order; even ids are English, odd ids French
func poems(n int) []vec.Document {
	var dd []vec.Document
	for i := 0; i < n; i++ {
		l := "en"
		if i%2 == 1 {
			l = "fr"
		}
		dd = append(dd, vec.Document{ID: i, Label: fmt.Sprintf("p%d.txt", i), Lang: l})
	}
	return dd
}

func mustgraph(docs []vec.Document, ee []grph.Edge) *grph.Graph {
	g, err := grph.New(docs, ee)
	Expect(err).NotTo(HaveOccurred())
	return g
}

// detour - the greedy walk strands 3 and 4 once edges under 0.25 are off limits; a full path exists
func detour() *grph.Graph {
	return mustgraph(poems(6), []grph.Edge{
		{U: 0, V: 1, Weight: 0.9},
		{U: 1, V: 2, Weight: 0.8},
		{U: 1, V: 4, Weight: 0.7},
		{U: 3, V: 4, Weight: 0.6},
		{U: 2, V: 5, Weight: 0.3},
		{U: 2, V: 3, Weight: 0.26},
		{U: 4, V: 5, Weight: 0.05},
	})
}

var _ = Describe("seeds", func() {
	It("opens with the heaviest cross edge", func() {
		g := mustgraph(poems(4), []grph.Edge{{U: 0, V: 2, Weight: 0.99}, {U: 2, V: 3, Weight: 0.7}, {U: 0, V: 1, Weight: 0.5}})
		s, err := itin.AutoSeed(g)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(itin.Seed{U: 2, V: 3}))
	})

	It("needs two languages", func() {
		dd := poems(1)
		dd = append(dd, vec.Document{ID: 7, Lang: "en"})
		_, err := itin.AutoSeed(mustgraph(dd, nil))
		Expect(errors.Is(err, itin.ErrNoCrossEdges)).To(BeTrue())
	})

	It("resolves labels", func() {
		g := mustgraph(poems(4), nil)
		s, err := itin.SeedFromLabels(g, itin.Endpoint{Lang: "en", Label: "p2.txt"}, itin.Endpoint{Lang: "fr", Label: "p1.txt"})
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(itin.Seed{U: 2, V: 1}))
	})

	It("refuses unknown labels and same-language pairs", func() {
		g := mustgraph(poems(4), nil)
		_, err := itin.SeedFromLabels(g, itin.Endpoint{Label: "nope.txt"}, itin.Endpoint{Label: "p1.txt"})
		Expect(errors.Is(err, itin.ErrUnknownSeed)).To(BeTrue())
		_, err = itin.SeedFromLabels(g, itin.Endpoint{Label: "p0.txt"}, itin.Endpoint{Label: "p2.txt"})
		Expect(errors.Is(err, itin.ErrSeedSameLanguage)).To(BeTrue())
	})

	It("refuses labels that name two poems", func() {
		dd := poems(2)
		dd = append(dd, vec.Document{ID: 2, Label: "p1.txt", Lang: "en"})
		_, err := itin.SeedFromLabels(mustgraph(dd, nil), itin.Endpoint{Label: "p1.txt"}, itin.Endpoint{Label: "p0.txt"})
		Expect(errors.Is(err, itin.ErrAmbiguousSeed)).To(BeTrue())
	})
})

var _ = Describe("Walk", func() {
	It("follows the heaviest edge to an unvisited poem", func() {
		// A-B 0.9, B-C 0.5, A-C 0.1; from B the only unvisited neighbor is C
		dd := []vec.Document{{ID: 0, Label: "A", Lang: "en"}, {ID: 1, Label: "B", Lang: "fr"}, {ID: 2, Label: "C", Lang: "en"}}
		g := mustgraph(dd, []grph.Edge{{U: 0, V: 1, Weight: 0.9}, {U: 1, V: 2, Weight: 0.5}, {U: 0, V: 2, Weight: 0.1}})
		it, err := itin.Walk(g, itin.Seed{U: 0, V: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(it.IDs()).To(Equal([]int{0, 1, 2}))
		Expect(it.Stalled).To(BeFalse())
		Expect(it.Stops[2].Weight).To(Equal(0.5))
		Expect(it.Stops[0].Weight).To(BeZero())
	})

	It("surfaces partial coverage", func() {
		dd := []vec.Document{{ID: 0, Lang: "en"}, {ID: 1, Lang: "en"}, {ID: 2, Lang: "en"}, {ID: 3, Lang: "fr"}}
		g := mustgraph(dd, []grph.Edge{{U: 0, V: 3, Weight: 0.9}, {U: 2, V: 3, Weight: 0.4}, {U: 1, V: 3, Weight: 0.3}})
		it, err := itin.Walk(g, itin.Seed{U: 0, V: 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(it.IDs()).To(Equal([]int{0, 3, 2}))
		Expect(it.Stalled).To(BeTrue())
		Expect(it.Unvisited).To(Equal([]int{1}))
	})

	It("never repeats a poem and always changes language", func() {
		rng := rand.New(rand.NewSource(11))
		dd := poems(20)
		for i := range dd {
			v := make([]float64, 8)
			for j := range v {
				v[j] = rng.NormFloat64()
			}
			dd[i].Vector = v
		}
		g := grph.Build(dd, 3, false)
		s, err := itin.AutoSeed(g)
		Expect(err).NotTo(HaveOccurred())
		it, err := itin.Walk(g, s)
		Expect(err).NotTo(HaveOccurred())

		seen := make(map[int]bool)
		for i, st := range it.Stops {
			Expect(seen[st.ID]).To(BeFalse())
			seen[st.ID] = true
			if i > 0 {
				Expect(st.Lang).NotTo(Equal(it.Stops[i-1].Lang))
			}
		}
		Expect(it.Stalled).To(BeFalse())
		Expect(it.Stops).To(HaveLen(20))
	})

	It("refuses a seed within one language", func() {
		_, err := itin.Walk(mustgraph(poems(4), nil), itin.Seed{U: 0, V: 2})
		Expect(errors.Is(err, itin.ErrSeedSameLanguage)).To(BeTrue())
	})

	It("stays off edges under the floor", func() {
		w := itin.Walker{Floor: 0.25}
		it, err := w.Walk(detour(), itin.Seed{U: 0, V: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(it.IDs()).To(Equal([]int{0, 1, 2, 5}))
		Expect(it.Stalled).To(BeTrue())
		Expect(it.Unvisited).To(Equal([]int{3, 4}))
	})
})

var _ = Describe("WalkBacktracking", func() {
	It("backs up until every poem is on the path", func() {
		w := itin.Walker{Floor: 0.25, Budget: 1000}
		it, err := w.WalkBacktracking(detour(), itin.Seed{U: 0, V: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(it.IDs()).To(Equal([]int{0, 1, 4, 3, 2, 5}))
		Expect(it.Stalled).To(BeFalse())
		Expect(it.Expansions).To(BeNumerically(">", 4))
	})

	It("matches the greedy walk when the greedy walk already covers everything", func() {
		g := detour()
		s := itin.Seed{U: 0, V: 1}
		gr, err := itin.Walk(g, s)
		Expect(err).NotTo(HaveOccurred())
		bt, err := itin.WalkBacktracking(g, s, 1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(bt.IDs()).To(Equal(gr.IDs()))
		Expect(bt.Expansions).To(Equal(4))
	})

	It("settles for the longest path once the budget is spent", func() {
		w := itin.Walker{Floor: 0.25, Budget: 1}
		it, err := w.WalkBacktracking(detour(), itin.Seed{U: 0, V: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(it.IDs()).To(Equal([]int{0, 1, 2}))
		Expect(it.Stalled).To(BeTrue())
		Expect(it.Expansions).To(Equal(1))
	})

	It("does not search for a path the language counts rule out", func() {
		dd := []vec.Document{{ID: 0, Lang: "en"}, {ID: 1, Lang: "en"}, {ID: 2, Lang: "en"}, {ID: 3, Lang: "fr"}}
		g := mustgraph(dd, []grph.Edge{{U: 0, V: 3, Weight: 0.9}, {U: 2, V: 3, Weight: 0.4}, {U: 1, V: 3, Weight: 0.3}})
		it, err := itin.WalkBacktracking(g, itin.Seed{U: 0, V: 3}, 1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(it.IDs()).To(Equal([]int{0, 3, 2}))
		Expect(it.Expansions).To(Equal(1))
	})
})
