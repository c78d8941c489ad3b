//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package algn

import (
	"errors"
	"fmt"
	"math"

	"github.com/Margento/BilingualCorpusJourney/internal/emb"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoPairs     = errors.New("no bilingual pair is present in both spaces")
	ErrDimMismatch = errors.New("the two spaces have different dimensions")
	ErrSVD         = errors.New("SVD factorization failed")
)

// BuildTrainingMatrices - row i of src and row i of tgt are the vectors of the i-th pair found in both spaces
func BuildTrainingMatrices(source, target *emb.Space, pairs []Pair) (*mat.Dense, *mat.Dense, error) {
	if source.Dim() != target.Dim() {
		return nil, nil, fmt.Errorf("%s (%d) vs %s (%d): %w", source.Name, source.Dim(), target.Name, target.Dim(), ErrDimMismatch)
	}

	var kept []Pair
	for _, p := range pairs {
		if source.Contains(p.Source) && target.Contains(p.Target) {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil, nil, fmt.Errorf("%s -> %s: %w", source.Name, target.Name, ErrNoPairs)
	}

	d := source.Dim()
	src := mat.NewDense(len(kept), d, nil)
	tgt := mat.NewDense(len(kept), d, nil)
	for i, p := range kept {
		// Contains() was checked above
		sv, _ := source.Lookup(p.Source)
		tv, _ := target.Lookup(p.Target)
		src.SetRow(i, sv)
		tgt.SetRow(i, tv)
	}
	return src, tgt, nil
}

// LearnTransform - orthogonal Procrustes: with P = srcᵀ·tgt = U·S·Vᵀ the transform is U·Vᵀ
func LearnTransform(src, tgt mat.Matrix, normalize bool) (*mat.Dense, error) {
	sr, sc := src.Dims()
	tr, tc := tgt.Dims()
	if sr != tr || sc != tc {
		return nil, fmt.Errorf("training matrices are %dx%d and %dx%d: %w", sr, sc, tr, tc, ErrDimMismatch)
	}
	if sr == 0 {
		return nil, ErrNoPairs
	}

	if normalize {
		src = emb.NormalizeRows(src)
		tgt = emb.NormalizeRows(tgt)
	}

	var p mat.Dense
	p.Mul(src.T(), tgt)

	var svd mat.SVD
	if ok := svd.Factorize(&p, mat.SVDFull); !ok {
		return nil, ErrSVD
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var t mat.Dense
	t.Mul(&u, v.T())
	return &t, nil
}

// Apply - right-multiply the transform into the space: E = E·T
func Apply(space *emb.Space, t mat.Matrix) error {
	return space.ApplyTransform(t)
}

// IsOrthogonal - TᵀT within tol of the identity
func IsOrthogonal(t mat.Matrix, tol float64) bool {
	r, c := t.Dims()
	if r != c {
		return false
	}
	var tt mat.Dense
	tt.Mul(t.T(), t)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(tt.At(i, j)-want) > tol {
				return false
			}
		}
	}
	return true
}
