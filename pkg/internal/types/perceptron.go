package types

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Perceptron is a fully connected classifier with one hidden layer: affine to
// the hidden width, rectified-linear nonlinearity, affine to the class count,
// then a row-wise softmax. Parameters are allocated and randomly initialized
// at construction; Forward is a stateless pass over the current snapshot.
type Perceptron interface {
	// Forward maps an input batch of shape (batch, inputSize) to a class
	// probability batch of shape (batch, classes), every row non-negative and
	// summing to 1. A column-count mismatch fails at the first affine
	// boundary with an ErrShapeMismatch-wrapped error naming both shapes.
	Forward(x *mat.Dense) (*mat.Dense, error)

	InputSize() int
	HiddenSize() int
	Classes() int

	// SetRandomSource replaces the source used for parameter initialization.
	// Only meaningful before construction finishes, i.e. from an option.
	SetRandomSource(src rand.Source)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
