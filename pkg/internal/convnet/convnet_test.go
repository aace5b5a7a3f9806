package convnet_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/joeydtaylor/seislab/pkg/internal/convnet"
	"github.com/joeydtaylor/seislab/pkg/internal/tensor"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

func randomBatch(t *testing.T, n, h, w int) tensor.Tensor4 {
	t.Helper()
	batch, err := tensor.New(n, 1, h, w)
	if err != nil {
		t.Fatalf("building batch: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	for i := range batch.Data {
		batch.Data[i] = rng.Float64()
	}
	return batch
}

func TestForwardOn32x32(t *testing.T) {
	net := convnet.New(convnet.WithRandomSource(rand.NewSource(1)))
	x := randomBatch(t, 3, 32, 32)

	probs, features, err := net.Forward(x)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}

	rows, cols := probs.Dims()
	if rows != 3 || cols != 10 {
		t.Fatalf("expected probabilities (3, 10), got (%d, %d)", rows, cols)
	}
	for r := 0; r < rows; r++ {
		sum := 0.0
		for c := 0; c < cols; c++ {
			v := probs.At(r, c)
			if v < 0 {
				t.Errorf("row %d col %d: negative probability %v", r, c, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("row %d: probabilities sum to %v, want 1", r, sum)
		}
	}

	fRows, fCols := features.Dims()
	if fRows != 3 || fCols != 16*2*8*8 {
		t.Fatalf("expected features (3, %d), got (%d, %d)", 16*2*8*8, fRows, fCols)
	}
}

func TestForwardHiddenSizeOverride(t *testing.T) {
	net := convnet.New(
		convnet.WithHiddenSize(4),
		convnet.WithClasses(3),
		convnet.WithRandomSource(rand.NewSource(1)),
	)
	x := randomBatch(t, 2, 32, 32)

	probs, features, err := net.Forward(x)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	if _, cols := probs.Dims(); cols != 3 {
		t.Errorf("expected 3 classes, got %d", cols)
	}
	if _, fCols := features.Dims(); fCols != 4*2*8*8 {
		t.Errorf("expected feature width %d, got %d", 4*2*8*8, fCols)
	}
}

func TestForwardWrongSpatialDims(t *testing.T) {
	net := convnet.New(convnet.WithRandomSource(rand.NewSource(1)))
	// 40x40 pools down to 10x10 after two stages, breaking the 8x8
	// flatten assumption.
	x := randomBatch(t, 1, 40, 40)

	_, _, err := net.Forward(x)
	if !errors.Is(err, types.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestForward28x28BreaksFlattenAssumption(t *testing.T) {
	net := convnet.New(convnet.WithRandomSource(rand.NewSource(1)))
	// 28x28 pools to 7x7 (28 -> 14 -> 7) under the default kernel
	// geometry, so the 8x8 flatten assumption fails at the affine boundary.
	x := randomBatch(t, 1, 28, 28)

	_, _, err := net.Forward(x)
	if !errors.Is(err, types.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestForwardMultiChannelInput(t *testing.T) {
	net := convnet.New(convnet.WithRandomSource(rand.NewSource(1)))
	x, err := tensor.New(1, 3, 32, 32)
	if err != nil {
		t.Fatalf("building batch: %v", err)
	}

	_, _, err = net.Forward(x)
	if !errors.Is(err, types.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestForwardDeterministicWithSeed(t *testing.T) {
	x := randomBatch(t, 1, 32, 32)

	forward := func() float64 {
		net := convnet.New(convnet.WithRandomSource(rand.NewSource(99)))
		probs, _, err := net.Forward(x)
		if err != nil {
			t.Fatalf("forward: %v", err)
		}
		return probs.At(0, 0)
	}

	if a, b := forward(), forward(); a != b {
		t.Errorf("identical seeds produced different outputs: %v vs %v", a, b)
	}
}

func TestDefaults(t *testing.T) {
	net := convnet.New()
	if net.InputSize() != 28*28 || net.Classes() != 10 || net.HiddenSize() != 16 {
		t.Errorf("unexpected defaults: input %d, classes %d, hidden %d", net.InputSize(), net.Classes(), net.HiddenSize())
	}
	size, stride, padding := net.Kernel()
	if size != 5 || stride != 1 || padding != 2 {
		t.Errorf("unexpected kernel defaults: (%d, %d, %d)", size, stride, padding)
	}
}
