//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package algn

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/Margento/BilingualCorpusJourney/internal/base/gen"
	"github.com/Margento/BilingualCorpusJourney/internal/emb"
	"github.com/Margento/BilingualCorpusJourney/internal/vv"
	"gonum.org/v1/gonum/mat"
)

// TransformStore - somewhere to keep learned transforms between runs
type TransformStore interface {
	Fetch(fp string) (*mat.Dense, bool, error)
	Add(fp string, t *mat.Dense) error
}

// Aligner - learns (or recalls) the transform that carries a source space into a target space
type Aligner struct {
	Normalize bool
	Store     TransformStore // nil: always learn
}

// Result - what Align() did
type Result struct {
	Transform   *mat.Dense
	Fingerprint string
	Pairs       int
	Cached      bool
}

// Align - build the training matrices, fetch or learn the transform, and apply it to source in place
func (a Aligner) Align(source, target *emb.Space, pairs []Pair) (Result, error) {
	const (
		MSG1 = "Align(): %s training pairs from %s -> %s"
		MSG2 = "Align(): transform %s fetched from the cache"
		MSG3 = "Align(): could not store transform %s: %s"
		MSG4 = "Align(): cache lookup failed for %s: %s"
		WRN1 = "Align(): the learned transform is not orthogonal to within %g"
	)

	start := time.Now()

	src, tgt, err := BuildTrainingMatrices(source, target, pairs)
	if err != nil {
		return Result{}, err
	}

	n, _ := src.Dims()
	Msg.FYI(fmt.Sprintf(MSG1, gen.PrettyInt(n), source.Name, target.Name))

	res := Result{Pairs: n, Fingerprint: Fingerprint(src, tgt, a.Normalize)}

	if a.Store != nil {
		t, ok, e := a.Store.Fetch(res.Fingerprint)
		if e != nil {
			Msg.WARN(fmt.Sprintf(MSG4, res.Fingerprint, e.Error()))
		}
		if ok {
			Msg.PEEK(fmt.Sprintf(MSG2, res.Fingerprint))
			res.Transform = t
			res.Cached = true
		}
	}

	if res.Transform == nil {
		t, e := LearnTransform(src, tgt, a.Normalize)
		if e != nil {
			return Result{}, e
		}
		res.Transform = t
		Msg.Timer("L1", "LearnTransform()", start, start)
		if a.Store != nil {
			if e = a.Store.Add(res.Fingerprint, t); e != nil {
				Msg.WARN(fmt.Sprintf(MSG3, res.Fingerprint, e.Error()))
			}
		}
	}

	if !IsOrthogonal(res.Transform, vv.ORTHOGONALTOL) {
		Msg.WARN(fmt.Sprintf(WRN1, vv.ORTHOGONALTOL))
	}

	if err = Apply(source, res.Transform); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Fingerprint - md5 of the training data and the normalization switch
func Fingerprint(src, tgt mat.Matrix, normalize bool) string {
	h := md5.New()
	b := make([]byte, 8)

	put := func(m mat.Matrix) {
		r, c := m.Dims()
		binary.LittleEndian.PutUint64(b, uint64(r))
		h.Write(b)
		binary.LittleEndian.PutUint64(b, uint64(c))
		h.Write(b)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				binary.LittleEndian.PutUint64(b, math.Float64bits(m.At(i, j)))
				h.Write(b)
			}
		}
	}

	put(src)
	put(tgt)
	if normalize {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
