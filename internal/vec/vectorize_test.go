//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Margento/BilingualCorpusJourney/internal/emb"
	"github.com/Margento/BilingualCorpusJourney/internal/vec"
)

var _ = Describe("Vectorize", func() {
	var sp *emb.Space

	BeforeEach(func() {
		var err error
		sp, err = emb.NewSpace("en", []string{"sea", "sky", "zero"}, [][]float64{{3, 4}, {0, 2}, {0, 0}})
		Expect(err).NotTo(HaveOccurred())
	})

	It("averages the normalized token vectors", func() {
		v, n := vec.Vectorize([]string{"sea", "sky"}, sp)
		Expect(n).To(Equal(2))
		Expect(v[0]).To(BeNumerically("~", 0.3, 1e-12))
		Expect(v[1]).To(BeNumerically("~", 0.9, 1e-12))
	})

	It("divides by the original token count so unknown tokens dilute", func() {
		v, n := vec.Vectorize([]string{"sea", "abyss", "void", "sky"}, sp)
		Expect(n).To(Equal(2))
		Expect(v[0]).To(BeNumerically("~", 0.15, 1e-12))
		Expect(v[1]).To(BeNumerically("~", 0.45, 1e-12))
	})

	It("counts repeated tokens every time", func() {
		v, _ := vec.Vectorize([]string{"sky", "sky", "sea"}, sp)
		Expect(v[0]).To(BeNumerically("~", 0.2, 1e-12))
		Expect(v[1]).To(BeNumerically("~", (1+1+0.8)/3, 1e-12))
	})

	It("gives the zero vector for no tokens and never NaN", func() {
		v, n := vec.Vectorize(nil, sp)
		Expect(n).To(BeZero())
		Expect(v).To(Equal([]float64{0, 0}))
		Expect(vec.IsZero(v)).To(BeTrue())

		v, _ = vec.Vectorize([]string{"zero"}, sp)
		for _, x := range v {
			Expect(math.IsNaN(x)).To(BeFalse())
		}
		Expect(vec.IsZero(v)).To(BeTrue())
	})

	It("gives the zero vector when nothing resolves", func() {
		v, n := vec.Vectorize([]string{"abyss"}, sp)
		Expect(n).To(BeZero())
		Expect(vec.IsZero(v)).To(BeTrue())
	})
})

var _ = Describe("VectorizeCorpus", func() {
	It("sets every vector without touching the input", func() {
		sp, _ := emb.NewSpace("en", []string{"sea", "sky"}, [][]float64{{1, 0}, {0, 1}})
		docs := []vec.Document{
			{ID: 0, Tokens: []string{"sea"}},
			{ID: 1, Tokens: []string{"sky"}},
			{ID: 2, Tokens: []string{"abyss"}},
			{ID: 3},
		}
		out := vec.VectorizeCorpus(docs, sp, 3, false)
		Expect(out).To(HaveLen(4))
		Expect(out[0].Vector).To(Equal([]float64{1, 0}))
		Expect(out[1].Vector).To(Equal([]float64{0, 1}))
		Expect(vec.IsZero(out[2].Vector)).To(BeTrue())
		Expect(vec.IsZero(out[3].Vector)).To(BeTrue())
		Expect(docs[0].Vector).To(BeNil())
	})
})
