package tensor_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/seislab/pkg/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

func TestConv2DIdentityKernel(t *testing.T) {
	in, err := tensor.FromData(1, 1, 3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	if err != nil {
		t.Fatalf("building input: %v", err)
	}

	// 1x1 identity kernel reproduces the input.
	kernel, err := tensor.FromData(1, 1, 1, 1, []float64{1})
	if err != nil {
		t.Fatalf("building kernel: %v", err)
	}

	out, err := tensor.Conv2D(in, kernel, nil, 1, 0)
	if err != nil {
		t.Fatalf("conv2d: %v", err)
	}
	if out.H != 3 || out.W != 3 {
		t.Fatalf("expected 3x3 output, got %dx%d", out.H, out.W)
	}
	for i := range in.Data {
		if out.Data[i] != in.Data[i] {
			t.Errorf("element %d: expected %v, got %v", i, in.Data[i], out.Data[i])
		}
	}
}

func TestConv2DGeometry(t *testing.T) {
	in, _ := tensor.New(2, 1, 28, 28)
	kernels, _ := tensor.New(16, 1, 5, 5)

	out, err := tensor.Conv2D(in, kernels, make([]float64, 16), 1, 2)
	if err != nil {
		t.Fatalf("conv2d: %v", err)
	}
	// (28 - 5 + 2*2)/1 + 1 = 28: padding 2 preserves the spatial dims.
	if out.N != 2 || out.C != 16 || out.H != 28 || out.W != 28 {
		t.Fatalf("expected (2, 16, 28, 28), got (%d, %d, %d, %d)", out.N, out.C, out.H, out.W)
	}
}

func TestConv2DChannelMismatch(t *testing.T) {
	in, _ := tensor.New(1, 3, 8, 8)
	kernels, _ := tensor.New(4, 1, 3, 3)

	if _, err := tensor.Conv2D(in, kernels, nil, 1, 1); err == nil {
		t.Fatal("expected an error for mismatched channel counts")
	}
}

func TestConv2DBias(t *testing.T) {
	in, _ := tensor.New(1, 1, 2, 2)
	kernel, _ := tensor.FromData(1, 1, 1, 1, []float64{1})

	out, err := tensor.Conv2D(in, kernel, []float64{2.5}, 1, 0)
	if err != nil {
		t.Fatalf("conv2d: %v", err)
	}
	for i, v := range out.Data {
		if v != 2.5 {
			t.Errorf("element %d: expected bias 2.5 on zero input, got %v", i, v)
		}
	}
}

func TestMaxPool2D(t *testing.T) {
	in, err := tensor.FromData(1, 1, 4, 4, []float64{
		1, 2, 5, 6,
		3, 4, 7, 8,
		-1, -2, 0, 0,
		-3, -4, 0, 9,
	})
	if err != nil {
		t.Fatalf("building input: %v", err)
	}

	out, err := tensor.MaxPool2D(in, 2)
	if err != nil {
		t.Fatalf("maxpool2d: %v", err)
	}
	expected := []float64{4, 8, -1, 9}
	for i, v := range expected {
		if out.Data[i] != v {
			t.Errorf("element %d: expected %v, got %v", i, v, out.Data[i])
		}
	}
}

func TestMaxPool2DIndivisible(t *testing.T) {
	in, _ := tensor.New(1, 1, 5, 5)
	if _, err := tensor.MaxPool2D(in, 2); err == nil {
		t.Fatal("expected an error when the window does not divide the input")
	}
}

func TestReLU(t *testing.T) {
	in, _ := tensor.FromData(1, 1, 1, 4, []float64{-1, 0, 2, -0.5})
	tensor.ReLU(in)
	expected := []float64{0, 0, 2, 0}
	for i, v := range expected {
		if in.Data[i] != v {
			t.Errorf("element %d: expected %v, got %v", i, v, in.Data[i])
		}
	}
}

func TestSoftmaxRows(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, -5, 0, 5})
	tensor.SoftmaxRows(m)

	rows, cols := m.Dims()
	for r := 0; r < rows; r++ {
		sum := 0.0
		for c := 0; c < cols; c++ {
			v := m.At(r, c)
			if v < 0 {
				t.Errorf("row %d col %d: negative probability %v", r, c, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("row %d: probabilities sum to %v, want 1", r, sum)
		}
	}
	// Larger score means larger probability within a row.
	if !(m.At(0, 2) > m.At(0, 1) && m.At(0, 1) > m.At(0, 0)) {
		t.Error("softmax did not preserve score ordering")
	}
}

func TestFlatten(t *testing.T) {
	in, _ := tensor.FromData(2, 1, 2, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	flat := in.Flatten()

	rows, cols := flat.Dims()
	if rows != 2 || cols != 4 {
		t.Fatalf("expected (2, 4), got (%d, %d)", rows, cols)
	}
	if flat.At(0, 0) != 1 || flat.At(1, 3) != 8 {
		t.Error("flatten did not preserve row-major order")
	}

	// The flattened matrix must not alias the tensor.
	flat.Set(0, 0, 100)
	if in.Data[0] != 1 {
		t.Error("flatten aliased the tensor's backing slice")
	}
}
