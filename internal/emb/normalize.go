//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package emb

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NormalizeRows - a copy of m with every row scaled to unit L2 norm; zero rows stay zero
func NormalizeRows(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Copy(m)
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		if nm := floats.Norm(row, 2); nm != 0 {
			floats.Scale(1/nm, row)
		}
	}
	return out
}

// NormalizeVector - a unit-length copy of v; the zero vector comes back as a zero vector
func NormalizeVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	if nm := floats.Norm(out, 2); nm != 0 {
		floats.Scale(1/nm, out)
	}
	return out
}
