//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package grph_test

import (
	"bytes"
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Margento/BilingualCorpusJourney/internal/grph"
	"github.com/Margento/BilingualCorpusJourney/internal/vec"
)

const half = 0.7071067811865476

// quartet - two English and two French poems; d is the zero vector
func quartet() []vec.Document {
	return []vec.Document{
		{ID: 0, Label: "a.txt", Lang: "en", Vector: []float64{1, 0}},
		{ID: 1, Label: "b.txt", Lang: "en", Vector: []float64{1, 1}},
		{ID: 2, Label: "c.txt", Lang: "fr", Vector: []float64{0, 1}},
		{ID: 3, Label: "d.txt", Lang: "fr", Vector: []float64{0, 0}},
	}
}

func ids(rr []grph.Rank) []int {
	out := make([]int, len(rr))
	for i, r := range rr {
		out[i] = r.ID
	}
	return out
}

var _ = Describe("Cosine", func() {
	It("measures the angle", func() {
		Expect(grph.Cosine([]float64{1, 0}, []float64{1, 1})).To(BeNumerically("~", half, 1e-12))
		Expect(grph.Cosine([]float64{1, 0}, []float64{-2, 0})).To(BeNumerically("~", -1, 1e-12))
	})

	It("is zero against the zero vector", func() {
		c := grph.Cosine([]float64{1, 2}, []float64{0, 0})
		Expect(math.IsNaN(c)).To(BeFalse())
		Expect(c).To(BeZero())
	})

	It("is zero for mismatched lengths", func() {
		Expect(grph.Cosine([]float64{1, 2}, []float64{1})).To(BeZero())
	})
})

var _ = Describe("Build", func() {
	var g *grph.Graph

	BeforeEach(func() {
		g = grph.Build(quartet(), 2, false)
	})

	It("has one edge per unordered pair and no self loops", func() {
		ee := g.Edges()
		Expect(ee).To(HaveLen(6))
		for _, e := range ee {
			Expect(e.U).To(BeNumerically("<", e.V))
		}
		Expect(g.Weight(1, 1)).To(BeZero())
	})

	It("is symmetric", func() {
		Expect(g.Weight(0, 1)).To(BeNumerically("~", half, 1e-12))
		Expect(g.Weight(1, 0)).To(Equal(g.Weight(0, 1)))
		Expect(g.Weight(0, 3)).To(BeZero())
	})

	It("gives the same graph whatever the number of workers", func() {
		rng := rand.New(rand.NewSource(7))
		var docs []vec.Document
		for i := 0; i < 23; i++ {
			v := make([]float64, 5)
			for j := range v {
				v[j] = rng.NormFloat64()
			}
			lang := "en"
			if i%2 == 1 {
				lang = "fr"
			}
			docs = append(docs, vec.Document{ID: i, Lang: lang, Vector: v})
		}
		Expect(grph.Build(docs, 1, false).Edges()).To(Equal(grph.Build(docs, 6, false).Edges()))
	})

	It("sorts edges by weight and breaks ties by endpoints", func() {
		ee := g.EdgesSorted(true)
		Expect(ee[0].Weight).To(BeNumerically(">=", ee[1].Weight))
		Expect([]int{ee[0].U, ee[0].V}).To(Equal([]int{0, 1}))
		Expect([]int{ee[1].U, ee[1].V}).To(Equal([]int{1, 2}))
		Expect([]int{ee[2].U, ee[2].V}).To(Equal([]int{0, 2}))

		asc := g.EdgesSorted(false)
		Expect(asc[len(asc)-1].Weight).To(BeNumerically("~", half, 1e-12))
	})

	It("keeps only the edges between languages when asked", func() {
		ce := g.CrossEdges()
		Expect(ce).To(HaveLen(4))
		for _, e := range ce {
			Expect(g.Cross(e)).To(BeTrue())
		}
		Expect([]int{ce[0].U, ce[0].V}).To(Equal([]int{1, 2}))
	})

	It("lists the cross edges touching a node", func() {
		in := g.Incident(2, true)
		Expect(in).To(HaveLen(2))
		Expect(in[0].Other(2)).To(Equal(1))
		Expect(in[1].Other(2)).To(Equal(0))
	})

	It("ranks weighted degree", func() {
		Expect(g.DegreeWeighted(1)).To(BeNumerically("~", 2*half, 1e-12))
		Expect(ids(g.Degrees())).To(Equal([]int{1, 0, 2, 3}))
		Expect(grph.TopRanks(g.Degrees(), 2)).To(HaveLen(2))
	})
})

var _ = Describe("centralities", func() {
	var g *grph.Graph

	BeforeEach(func() {
		g = grph.Build(quartet(), 0, false)
	})

	It("turns correlations into non-negative distances", func() {
		Expect(grph.Distance(0.25)).To(Equal(0.75))
		Expect(grph.Distance(1.5)).To(BeZero())
		Expect(grph.Distance(-0.5)).To(Equal(1.5))
	})

	It("finds every node equally close when hops are counted", func() {
		for _, r := range g.Closeness(false) {
			Expect(r.Value).To(BeNumerically("~", 1, 1e-12))
		}
	})

	It("finds the bridge closest when distances are weighted", func() {
		Expect(g.Closeness(true)[0].ID).To(Equal(1))
	})

	It("finds the bridge between the two poles", func() {
		bb := g.Betweenness(true)
		Expect(bb[0].ID).To(Equal(1))
		Expect(bb[0].Value).To(BeNumerically(">", 0))
		for _, r := range bb[1:] {
			Expect(r.Value).To(BeZero())
		}
		for _, r := range g.Betweenness(false) {
			Expect(r.Value).To(BeZero())
		}
	})

	It("computes the leading eigenvector", func() {
		ev := g.Eigenvector()
		Expect(ev[0].ID).To(Equal(1))
		Expect(ev[0].Value).To(BeNumerically("~", half, 1e-9))
		Expect(ev[1].Value).To(BeNumerically("~", 0.5, 1e-9))
		Expect(ev[3].ID).To(Equal(3))
		Expect(ev[3].Value).To(BeNumerically("~", 0, 1e-9))
	})
})

var _ = Describe("RenderItinerary", func() {
	var g *grph.Graph

	BeforeEach(func() {
		g = grph.Build(quartet(), 1, false)
	})

	It("writes an html chart naming every stop", func() {
		var buf bytes.Buffer
		Expect(grph.RenderItinerary(&buf, g, []int{1, 2, 0}, grph.DefaultRenderOptions())).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("echarts"))
		Expect(buf.String()).To(ContainSubstring("1. b.txt"))
		Expect(buf.String()).To(ContainSubstring("3. a.txt"))
	})

	It("lays the stops out by their principal components", func() {
		o := grph.DefaultRenderOptions()
		o.PCA = true
		var buf bytes.Buffer
		Expect(grph.RenderItinerary(&buf, g, []int{0, 2, 1, 3}, o)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("4. d.txt"))
	})

	It("refuses unknown stops", func() {
		var buf bytes.Buffer
		Expect(grph.RenderItinerary(&buf, g, []int{0, 99}, grph.DefaultRenderOptions())).NotTo(Succeed())
	})
})

var _ = Describe("New", func() {
	It("uses the weights it is given", func() {
		docs := quartet()
		g, err := grph.New(docs, []grph.Edge{{U: 2, V: 0, Weight: 0.4}})
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Weight(0, 2)).To(Equal(0.4))
		Expect(g.Weight(1, 3)).To(BeZero())
		Expect(g.Edges()).To(HaveLen(6))
	})

	It("refuses self loops and strangers", func() {
		_, err := grph.New(quartet(), []grph.Edge{{U: 1, V: 1, Weight: 1}})
		Expect(err).To(HaveOccurred())
		_, err = grph.New(quartet(), []grph.Edge{{U: 1, V: 9, Weight: 1}})
		Expect(err).To(HaveOccurred())
	})
})
