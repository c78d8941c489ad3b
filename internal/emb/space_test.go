//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package emb_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/Margento/BilingualCorpusJourney/internal/emb"
)

const smallvec = `4 3
sea 1 0 0
mer 0.9 0.1 0
sky 0 1 0
ciel 0 0.8 0.2
`

var _ = Describe("Space", func() {
	var sp *emb.Space

	BeforeEach(func() {
		var err error
		sp, err = emb.ReadFrom(strings.NewReader(smallvec), "small.vec")
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("loading", func() {
		It("reads the header and every row", func() {
			Expect(sp.Len()).To(Equal(4))
			Expect(sp.Dim()).To(Equal(3))
			Expect(sp.Words()).To(Equal([]string{"sea", "mer", "sky", "ciel"}))
		})

		It("looks tokens up", func() {
			Expect(sp.Contains("sky")).To(BeTrue())
			v, err := sp.Lookup("mer")
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal([]float64{0.9, 0.1, 0}))
		})

		It("reports absent tokens with ErrKeyNotFound", func() {
			Expect(sp.Contains("abyss")).To(BeFalse())
			_, err := sp.Lookup("abyss")
			Expect(errors.Is(err, emb.ErrKeyNotFound)).To(BeTrue())
		})

		It("tolerates trailing spaces and CRLF", func() {
			s, err := emb.ReadFrom(strings.NewReader("1 2\r\nwave 0.5 0.25 \r\n"), "crlf.vec")
			Expect(err).NotTo(HaveOccurred())
			v, _ := s.Lookup("wave")
			Expect(v).To(Equal([]float64{0.5, 0.25}))
		})

		It("keeps the first row of a duplicated token", func() {
			s, err := emb.ReadFrom(strings.NewReader("2 1\nx 1\nx 2\n"), "dup.vec")
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Len()).To(Equal(2))
			v, _ := s.Lookup("x")
			Expect(v).To(Equal([]float64{1}))
		})

		DescribeTable("rejects malformed files with a FormatError naming the line",
			func(content string, line int) {
				_, err := emb.ReadFrom(strings.NewReader(content), "bad.vec")
				Expect(errors.Is(err, emb.ErrFormat)).To(BeTrue())
				var fe *emb.FormatError
				Expect(errors.As(err, &fe)).To(BeTrue())
				Expect(fe.Path).To(Equal("bad.vec"))
				Expect(fe.Line).To(Equal(line))
			},
			Entry("bad header", "three 2\na 1 2\n", 1),
			Entry("header with one field", "3\n", 1),
			Entry("short row", "2 2\na 1 2\nb 1\n", 3),
			Entry("long row", "1 2\na 1 2 3\n", 2),
			Entry("non-numeric value", "2 2\na 1 2\nb 1 x\n", 3),
			Entry("fewer rows than promised", "3 2\na 1 2\nb 1 2\n", 3),
			Entry("more rows than promised", "1 2\na 1 2\nb 1 2\n", 3),
		)

		It("reads from disk", func() {
			fn := filepath.Join(GinkgoT().TempDir(), "disk.vec")
			Expect(os.WriteFile(fn, []byte(smallvec), 0644)).To(Succeed())
			s, err := emb.Load(fn)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Len()).To(Equal(4))
		})
	})

	Describe("exporting", func() {
		It("writes six decimals in insertion order", func() {
			var b bytes.Buffer
			_, err := sp.WriteTo(&b)
			Expect(err).NotTo(HaveOccurred())
			lines := strings.Split(strings.TrimSpace(b.String()), "\n")
			Expect(lines[0]).To(Equal("4 3"))
			Expect(lines[2]).To(Equal("mer 0.900000 0.100000 0.000000"))
			Expect(lines[4]).To(HavePrefix("ciel "))
		})

		It("round-trips through Load", func() {
			fn := filepath.Join(GinkgoT().TempDir(), "out.vec")
			Expect(sp.Export(fn)).To(Succeed())
			back, err := emb.Load(fn)
			Expect(err).NotTo(HaveOccurred())
			Expect(back.Words()).To(Equal(sp.Words()))
			Expect(mat.EqualApprox(back.Matrix(), sp.Matrix(), 1e-6)).To(BeTrue())
		})
	})

	Describe("transforming", func() {
		It("right-multiplies every row", func() {
			// swap the first two axes
			t := mat.NewDense(3, 3, []float64{0, 1, 0, 1, 0, 0, 0, 0, 1})
			Expect(sp.ApplyTransform(t)).To(Succeed())
			v, _ := sp.Lookup("sea")
			Expect(v).To(Equal([]float64{0, 1, 0}))
		})

		It("refuses a transform of the wrong size", func() {
			Expect(sp.ApplyTransform(mat.NewDense(2, 2, nil))).NotTo(Succeed())
		})
	})
})

var _ = Describe("NormalizeRows", func() {
	It("scales rows to unit length and leaves zero rows alone", func() {
		m := mat.NewDense(2, 2, []float64{3, 4, 0, 0})
		n := emb.NormalizeRows(m)
		Expect(n.At(0, 0)).To(BeNumerically("~", 0.6, 1e-12))
		Expect(n.At(0, 1)).To(BeNumerically("~", 0.8, 1e-12))
		Expect(n.RawRowView(1)).To(Equal([]float64{0, 0}))
		Expect(m.At(0, 0)).To(Equal(3.0))
	})

	It("normalizes single vectors the same way", func() {
		Expect(emb.NormalizeVector([]float64{0, 0})).To(Equal([]float64{0, 0}))
		Expect(emb.NormalizeVector([]float64{0, 2})).To(Equal([]float64{0, 1}))
	})
})
