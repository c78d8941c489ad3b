//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Margento/BilingualCorpusJourney/internal/vec"
	"github.com/Margento/BilingualCorpusJourney/internal/vv"
)

var _ = Describe("Tokenizer", func() {
	It("lower-cases, strips punctuation and drops stopwords", func() {
		t := vec.NewTokenizer("en", vec.DefaultStops("en"))
		Expect(t.Tokens("The Sea, the SEA! Upon the shore—of salt.")).To(Equal([]string{"sea", "sea", "shore", "salt"}))
	})

	It("splits French elisions and keeps accents", func() {
		t := vec.NewTokenizer("fr", vec.DefaultStops("fr"))
		Expect(t.Tokens("L'été de la Mer « éternelle »")).To(Equal([]string{"été", "mer", "éternelle"}))
	})

	It("composes decomposed accents", func() {
		t := vec.NewTokenizer("fr", nil)
		Expect(t.Tokens("E\u0301te\u0301")).To(Equal([]string{"\u00e9t\u00e9"}))
	})

	It("returns nothing for punctuation only", func() {
		t := vec.NewTokenizer("en", nil)
		Expect(t.Tokens(" ... — ! ")).To(BeEmpty())
	})
})

var _ = Describe("stopwords", func() {
	It("has no list for unknown languages", func() {
		Expect(vec.DefaultStops("xx")).To(BeEmpty())
	})

	It("keeps words removed from the stop list", func() {
		Expect(vec.DefaultStops("fr")).NotTo(ContainElement("été"))
		Expect(vec.DefaultStops("fr")).To(ContainElement("était"))
		Expect(vec.DefaultStops("en")).To(ContainElement("hath"))
	})

	It("writes the defaults when the file is missing and reads them back afterwards", func() {
		dir := GinkgoT().TempDir()
		first := vec.ReadStopConfig("en", dir)
		fn := filepath.Join(dir, fmt.Sprintf(vv.CONFIGSTOPSTMPL, "en"))
		Expect(fn).To(BeAnExistingFile())
		Expect(vec.ReadStopConfig("en", dir)).To(Equal(first))
	})

	It("lets the file override the defaults", func() {
		dir := GinkgoT().TempDir()
		fn := filepath.Join(dir, fmt.Sprintf(vv.CONFIGSTOPSTMPL, "fr"))
		b, _ := json.Marshal([]string{"mer"})
		Expect(os.WriteFile(fn, b, 0644)).To(Succeed())
		Expect(vec.ReadStopConfig("fr", dir)).To(Equal([]string{"mer"}))
	})

	It("falls back to the defaults when the file is broken", func() {
		dir := GinkgoT().TempDir()
		fn := filepath.Join(dir, fmt.Sprintf(vv.CONFIGSTOPSTMPL, "fr"))
		Expect(os.WriteFile(fn, []byte("[mer"), 0644)).To(Succeed())
		Expect(vec.ReadStopConfig("fr", dir)).To(Equal(vec.DefaultStops("fr")))
	})
})
