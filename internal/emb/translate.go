//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package emb

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/search"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrZeroVector = errors.New("cannot translate the zero vector")
	ErrDimension  = errors.New("dimension mismatch")
	ErrSamples    = errors.New("more samples requested than the space holds")
)

// SoftmaxOptions - settings for TranslateInvertedSoftmax()
type SoftmaxOptions struct {
	Samples     int     // vectors drawn from the source space to estimate the denominators
	Batch       int     // drawn this many at a time to bound memory
	Beta        float64 // inverse temperature
	Recalculate bool    // false: reuse the denominators from the previous call
	Rand        *rand.Rand
}

// Samples - n rows drawn without replacement
func (s *Space) Samples(n int, rng *rand.Rand) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: asked for %d samples", s.Name, n)
	}
	if n > s.Len() {
		return nil, fmt.Errorf("%s: %d > %d: %w", s.Name, n, s.Len(), ErrSamples)
	}
	ids := sampleindices(s.Len(), n, rng)
	out := mat.NewDense(n, s.Dim(), nil)
	for i, id := range ids {
		out.SetRow(i, s.embed.RawRowView(id))
	}
	return out, nil
}

// sampleindices - Floyd's algorithm: k distinct ints from [0, n) without building a permutation of n
func sampleindices(n int, k int, rng *rand.Rand) []int {
	chosen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t := rng.Intn(j + 1)
		if _, ok := chosen[t]; ok {
			t = j
		}
		chosen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// TranslateNearest - the token whose vector has the highest cosine similarity with vec
func (s *Space) TranslateNearest(vec []float64) (string, float64, error) {
	if len(vec) != s.Dim() {
		return "", 0, fmt.Errorf("%s: query has %d values, space has %d: %w", s.Name, len(vec), s.Dim(), ErrDimension)
	}
	if floats.Norm(vec, 2) == 0 {
		return "", 0, ErrZeroVector
	}

	sr, err := s.search()
	if err != nil {
		return "", 0, err
	}

	nn, err := sr.SearchVector(vec, 1)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", s.Name, err)
	}
	if len(nn) == 0 {
		return "", 0, fmt.Errorf("%s: %w", s.Name, ErrEmpty)
	}
	return nn[0].Word, nn[0].Similarity, nil
}

// search - build the wego searcher once per state of the space
func (s *Space) search() (*search.Searcher, error) {
	if s.searcher != nil {
		return s.searcher, nil
	}
	n, d := s.embed.Dims()
	embs := make(embedding.Embeddings, n)
	for i := 0; i < n; i++ {
		embs[i] = embedding.Embedding{
			Word:   s.words[i],
			Dim:    d,
			Vector: s.embed.RawRowView(i),
		}
	}
	sr, err := search.New(embs...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	s.searcher = sr
	return sr, nil
}

// TranslateInvertedSoftmax - sampled inverted softmax retrieval: exp(β·cos(t, q)) / Σ_samples exp(β·cos(t, s))
func (s *Space) TranslateInvertedSoftmax(vec []float64, source *Space, o SoftmaxOptions) (string, float64, error) {
	const (
		WRN = "%s: softmax batch %d capped at the %d rows of %s"
	)

	if len(vec) != s.Dim() || source.Dim() != s.Dim() {
		return "", 0, fmt.Errorf("%s <- %s: %w", s.Name, source.Name, ErrDimension)
	}
	qn := floats.Norm(vec, 2)
	if qn == 0 {
		return "", 0, ErrZeroVector
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(1))
	}
	if o.Batch < 1 {
		o.Batch = 1
	}
	if o.Batch > source.Len() {
		Msg.WARN(fmt.Sprintf(WRN, s.Name, o.Batch, source.Len(), source.Name))
		o.Batch = source.Len()
	}

	tn := NormalizeRows(s.embed)
	n, _ := tn.Dims()

	if s.denominators == nil || o.Recalculate {
		den := make([]float64, n)
		for remaining := o.Samples; remaining > 0; remaining -= o.Batch {
			smp, err := source.Samples(min(remaining, o.Batch), o.Rand)
			if err != nil {
				return "", 0, err
			}
			var sims mat.Dense
			sims.Mul(tn, NormalizeRows(smp).T())
			_, b := sims.Dims()
			for i := 0; i < n; i++ {
				row := sims.RawRowView(i)
				for j := 0; j < b; j++ {
					den[i] += math.Exp(o.Beta * row[j])
				}
			}
		}
		s.denominators = den
	}

	q := mat.NewVecDense(len(vec), nil)
	q.ScaleVec(1/qn, mat.NewVecDense(len(vec), vec))

	var sims mat.VecDense
	sims.MulVec(tn, q)

	best, score := -1, math.Inf(-1)
	for i := 0; i < n; i++ {
		if s.denominators[i] == 0 {
			continue
		}
		sc := math.Exp(o.Beta*sims.AtVec(i)) / s.denominators[i]
		if sc > score {
			best, score = i, sc
		}
	}
	if best < 0 {
		return "", 0, fmt.Errorf("%s: no softmax denominators; sample count was %d", s.Name, o.Samples)
	}
	return s.words[best], score, nil
}
