//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"sync"

	"github.com/Margento/BilingualCorpusJourney/internal/base/gen"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/gonum/floats"
)

// Lookuper - anything that maps tokens to vectors of a fixed dimension; *emb.Space is the one that matters
type Lookuper interface {
	Contains(token string) bool
	Lookup(token string) ([]float64, error)
	Dim() int
}

// Vectorize - the mean of the unit-normalized vectors of the resolved tokens, divided by the number of tokens
// passed in (unresolved tokens dilute the mean); no tokens at all yields the zero vector
func Vectorize(tokens []string, space Lookuper) ([]float64, int) {
	v := make([]float64, space.Dim())
	if len(tokens) == 0 {
		return v, 0
	}

	resolved := 0
	for _, t := range tokens {
		if !space.Contains(t) {
			continue
		}
		tv, err := space.Lookup(t)
		if err != nil {
			continue
		}
		if nm := floats.Norm(tv, 2); nm != 0 {
			floats.AddScaled(v, 1/nm, tv)
		}
		resolved++
	}

	floats.Scale(1/float64(len(tokens)), v)
	return v, resolved
}

// IsZero - the zero vector stands in for "no usable tokens"
func IsZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// VectorizeCorpus - copies of docs with Vector set; work is spread over workers goroutines
func VectorizeCorpus(docs []Document, space Lookuper, workers int, bar bool) []Document {
	const (
		MSG1 = "VectorizeCorpus(): %s tokens, %s resolved (%.1f%%)"
		WRN1 = "VectorizeCorpus(): %d poem(s) have no usable tokens and get the zero vector"
	)

	out := make([]Document, len(docs))
	copy(out, docs)

	if workers < 1 {
		workers = 1
	}

	var pb *progressbar.ProgressBar
	if bar {
		pb = gen.NewProgressBar(len(docs), "vectorizing")
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}

	var (
		wg       sync.WaitGroup
		mtx      sync.Mutex
		total    int
		resolved int
	)

	chunks := gen.ChunkSlice(idx, (len(idx)+workers-1)/workers)
	for _, ch := range chunks {
		wg.Add(1)
		go func(ch []int) {
			defer wg.Done()
			t, r := 0, 0
			for _, i := range ch {
				v, n := Vectorize(out[i].Tokens, space)
				out[i].Vector = v
				t += len(out[i].Tokens)
				r += n
				if pb != nil {
					_ = pb.Add(1)
				}
			}
			mtx.Lock()
			total += t
			resolved += r
			mtx.Unlock()
		}(ch)
	}
	wg.Wait()

	zero := 0
	for _, d := range out {
		if IsZero(d.Vector) {
			zero++
		}
	}
	if zero > 0 {
		Msg.WARN(fmt.Sprintf(WRN1, zero))
	}

	pct := 0.0
	if total > 0 {
		pct = 100 * float64(resolved) / float64(total)
	}
	Msg.PEEK(fmt.Sprintf(MSG1, gen.PrettyInt(total), gen.PrettyInt(resolved), pct))
	return out
}
