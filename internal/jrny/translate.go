//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package jrny

import (
	"fmt"
	"math/rand"

	"github.com/Margento/BilingualCorpusJourney/internal/base/str"
	"github.com/Margento/BilingualCorpusJourney/internal/emb"
)

// Translation - a B word looked up in A once B has been aligned
type Translation struct {
	Word         string
	Nearest      string
	Similarity   float64
	Softmax      string
	SoftmaxScore float64
}

// translate - nearest neighbor and inverted softmax retrieval of one word of b in a
func translate(cfg str.CurrentConfiguration, word string, a, b *emb.Space) (Translation, error) {
	const (
		MSG1 = "translate(): %d softmax samples requested; %s only has %d rows"
		OUT1 = "%s [%s] → %s [%s] (nearest: %.4f)"
		OUT2 = "%s [%s] → %s [%s] (inverted softmax: %.4g)"
	)

	tr := Translation{Word: word}
	q, err := b.Lookup(word)
	if err != nil {
		return tr, err
	}

	if tr.Nearest, tr.Similarity, err = a.TranslateNearest(q); err != nil {
		return tr, err
	}

	o := emb.SoftmaxOptions{
		Samples:     cfg.SoftmaxSamples,
		Batch:       cfg.SoftmaxBatch,
		Beta:        cfg.SoftmaxBeta,
		Recalculate: true,
		Rand:        rand.New(rand.NewSource(cfg.RandomSeed)),
	}
	if o.Samples > b.Len() {
		Msg.PEEK(fmt.Sprintf(MSG1, o.Samples, b.Name, b.Len()))
		o.Samples = b.Len()
	}
	if tr.Softmax, tr.SoftmaxScore, err = a.TranslateInvertedSoftmax(q, b, o); err != nil {
		return tr, err
	}

	Msg.MAND(fmt.Sprintf(OUT1, word, cfg.LangB.Tag, tr.Nearest, cfg.LangA.Tag, tr.Similarity))
	Msg.MAND(fmt.Sprintf(OUT2, word, cfg.LangB.Tag, tr.Softmax, cfg.LangA.Tag, tr.SoftmaxScore))
	return tr, nil
}
