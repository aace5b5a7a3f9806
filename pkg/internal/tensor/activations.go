package tensor

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ReLU clamps negative values to zero in place.
func ReLU(t Tensor4) {
	for i, v := range t.Data {
		if v < 0 {
			t.Data[i] = 0
		}
	}
}

// ReLUDense clamps negative matrix entries to zero in place.
func ReLUDense(m *mat.Dense) {
	raw := m.RawMatrix()
	for i, v := range raw.Data {
		if v < 0 {
			raw.Data[i] = 0
		}
	}
}

// SoftmaxRows rewrites each row of m as a probability distribution:
// max-subtract for stability, exponentiate, normalize. Every entry ends
// non-negative and every row sums to 1.
func SoftmaxRows(m *mat.Dense) {
	rows, cols := m.Dims()
	for r := 0; r < rows; r++ {
		row := m.RawRowView(r)
		maxV := math.Inf(-1)
		for _, v := range row {
			if v > maxV {
				maxV = v
			}
		}
		sum := 0.0
		for c := 0; c < cols; c++ {
			row[c] = math.Exp(row[c] - maxV)
			sum += row[c]
		}
		if sum == 0 {
			continue
		}
		inv := 1 / sum
		for c := 0; c < cols; c++ {
			row[c] *= inv
		}
	}
}
