//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"strings"
	"unicode"

	"github.com/Margento/BilingualCorpusJourney/internal/base/gen"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer - NFC, lower case (by the rules of the language), split on anything that is not a letter or a digit, drop stopwords
type Tokenizer struct {
	Tag   language.Tag
	stops map[string]struct{}
}

// NewTokenizer - an unparseable tag falls back to language.Und casing
func NewTokenizer(tag string, stops []string) *Tokenizer {
	lt, err := language.Parse(tag)
	if err != nil {
		lt = language.Und
	}
	return &Tokenizer{Tag: lt, stops: gen.ToSet(stops)}
}

// IsStop - is this (already lower-cased) token a stopword?
func (t *Tokenizer) IsStop(token string) bool {
	_, ok := t.stops[token]
	return ok
}

// Tokens - the content words of s in order
func (t *Tokenizer) Tokens(s string) []string {
	// a fresh chain every time: casers keep state and a Tokenizer is shared across goroutines
	chain := transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Cf)), cases.Lower(t.Tag))
	clean, _, err := transform.String(chain, s)
	if err != nil {
		clean = strings.ToLower(s)
	}

	split := func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c) && !unicode.Is(unicode.Mn, c)
	}

	var out []string
	for _, w := range strings.FieldsFunc(clean, split) {
		if !t.IsStop(w) {
			out = append(out, w)
		}
	}
	return out
}
