package types

import (
	"math/rand"

	"github.com/joeydtaylor/seislab/pkg/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// ConvNet is a small convolutional classifier for single-channel 2-D inputs:
// two stages of convolution, rectified-linear nonlinearity, and 2x2 max
// pooling, then a flatten, one affine transform to the class count, and a
// row-wise softmax. The classifier head is sized for 8x8 pooled feature
// maps, which the default kernel geometry produces from 32x32 inputs.
type ConvNet interface {
	// Forward maps an input batch of shape (batch, 1, H, W) to the class
	// probability batch and the flattened pre-affine feature batch of shape
	// (batch, hiddenSize*2*8*8). The features are exposed for downstream
	// inspection (embedding plots) and are not used internally. The flatten
	// step assumes the two pooling stages reduce the feature map to 8x8 per
	// channel; inputs breaking that assumption fail at the flatten-to-affine
	// boundary with an ErrShapeMismatch-wrapped error.
	Forward(x tensor.Tensor4) (probs *mat.Dense, features *mat.Dense, err error)

	InputSize() int
	HiddenSize() int
	Classes() int
	Kernel() (size, stride, padding int)

	SetInputSize(int)
	SetHiddenSize(int)
	SetClasses(int)
	SetKernel(size, stride, padding int)

	// SetRandomSource replaces the source used for parameter initialization.
	// Only meaningful before construction finishes, i.e. from an option.
	SetRandomSource(src rand.Source)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
