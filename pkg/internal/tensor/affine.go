package tensor

import "gonum.org/v1/gonum/mat"

// Affine computes x * wᵀ + bias, the fully connected layer over a batch of
// row vectors. Weights are laid out (outFeatures, inFeatures) and bias, when
// non-nil, carries one value per output feature. Dimension mismatches panic
// inside the matrix multiply; callers validate shapes first so the failure
// surfaces as an error at the layer boundary instead.
func Affine(x, w *mat.Dense, bias []float64) *mat.Dense {
	var out mat.Dense
	out.Mul(x, w.T())

	if bias != nil {
		rows, cols := out.Dims()
		for r := 0; r < rows; r++ {
			row := out.RawRowView(r)
			for c := 0; c < cols; c++ {
				row[c] += bias[c]
			}
		}
	}
	return &out
}
