//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm_test

import (
	"bytes"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Margento/BilingualCorpusJourney/internal/base/mm"
)

var _ = Describe("MessageMaker", func() {
	var (
		buf *bytes.Buffer
		m   *mm.MessageMaker
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		m = mm.NewMessageMaker()
		m.SNm = "BCJ"
		m.BW = true
		m.Out = buf
	})

	It("drops messages above the log level", func() {
		m.LLvl = mm.MSGWARN
		m.FYI("not shown")
		m.WARN("shown")
		Expect(buf.String()).To(Equal("[BCJ] shown\n"))
	})

	It("always prints mandatory messages", func() {
		m.LLvl = mm.MSGCRIT
		m.MAND("hello")
		Expect(buf.String()).To(ContainSubstring("hello"))
	})

	It("colors output unless black and white", func() {
		m.BW = false
		m.Win = false
		m.CRIT("red")
		Expect(buf.String()).To(ContainSubstring(mm.RED1))
		Expect(buf.String()).To(ContainSubstring(mm.RESET))
	})

	It("strips pseudo-tags in black and white mode", func() {
		Expect(m.ColStyle("S1C1bold yellowC0S0")).To(Equal("bold yellow"))
	})

	It("swaps pseudo-tags for ANSI codes in color mode", func() {
		m.BW = false
		m.Win = false
		Expect(m.Color("C4gitC0")).To(Equal(mm.GREEN + "git" + mm.RESET))
	})

	It("reports elapsed time at the timer threshold", func() {
		m.LLvl = mm.MSGFYI
		start := time.Now()
		m.Timer("A1", "graph built", start, start)
		Expect(buf.String()).To(MatchRegexp(`\[BCJ\] \[A1: \d+\.\d{3}s\]\[Δ: \d+\.\d{3}s\] graph built`))
	})

	It("carries settings into a caller copy", func() {
		c := m.Caller("Walk()")
		Expect(c.Clr).To(Equal("Walk()"))
		Expect(c.SNm).To(Equal("BCJ"))
		Expect(c.Out).To(BeIdenticalTo(m.Out))
	})
})
