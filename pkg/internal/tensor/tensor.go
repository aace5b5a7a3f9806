// Package tensor provides the minimal numeric substrate shared by the model
// architectures: a 4-D NCHW tensor over a row-major float64 slice, 2-D
// convolution and max pooling over it, and the rectified-linear and row-wise
// softmax transforms. It is pure math with no logging or component plumbing.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Tensor4 is a dense rank-4 tensor in NCHW layout (batch, channel, height,
// width) backed by a row-major float64 slice.
type Tensor4 struct {
	N, C, H, W int
	Data       []float64
}

// New allocates a zeroed tensor of the given geometry.
func New(n, c, h, w int) (Tensor4, error) {
	if n < 0 || c < 0 || h < 0 || w < 0 {
		return Tensor4{}, fmt.Errorf("tensor: negative geometry (%d, %d, %d, %d)", n, c, h, w)
	}
	return Tensor4{N: n, C: c, H: h, W: w, Data: make([]float64, n*c*h*w)}, nil
}

// FromData wraps an existing row-major slice without copying. The slice
// length must match the geometry exactly.
func FromData(n, c, h, w int, data []float64) (Tensor4, error) {
	if n < 0 || c < 0 || h < 0 || w < 0 {
		return Tensor4{}, fmt.Errorf("tensor: negative geometry (%d, %d, %d, %d)", n, c, h, w)
	}
	if len(data) != n*c*h*w {
		return Tensor4{}, fmt.Errorf("tensor: data length %d does not match geometry (%d, %d, %d, %d)", len(data), n, c, h, w)
	}
	return Tensor4{N: n, C: c, H: h, W: w, Data: data}, nil
}

// At returns the element at (n, c, h, w).
func (t Tensor4) At(n, c, h, w int) float64 {
	return t.Data[((n*t.C+c)*t.H+h)*t.W+w]
}

// Set writes the element at (n, c, h, w).
func (t Tensor4) Set(n, c, h, w int, v float64) {
	t.Data[((n*t.C+c)*t.H+h)*t.W+w] = v
}

// Len returns the total element count.
func (t Tensor4) Len() int { return t.N * t.C * t.H * t.W }

// Flatten collapses each example to one row, yielding a (N, C*H*W) matrix.
// The data is copied, so the matrix does not alias the tensor.
func (t Tensor4) Flatten() *mat.Dense {
	cols := t.C * t.H * t.W
	if t.N == 0 || cols == 0 {
		return mat.NewDense(max(t.N, 1), max(cols, 1), nil)
	}
	data := make([]float64, len(t.Data))
	copy(data, t.Data)
	return mat.NewDense(t.N, cols, data)
}
