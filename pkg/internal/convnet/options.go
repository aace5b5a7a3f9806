package convnet

import (
	"math/rand"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// WithLogger creates an option to add one or more loggers to a convnet.
func WithLogger(logger ...types.Logger) types.Option[types.ConvNet] {
	return func(c types.ConvNet) {
		c.ConnectLogger(logger...)
	}
}

// WithComponentMetadata overrides the component name and id.
func WithComponentMetadata(name string, id string) types.Option[types.ConvNet] {
	return func(c types.ConvNet) {
		c.SetComponentMetadata(name, id)
	}
}

// WithInputSize records the informational input size.
func WithInputSize(n int) types.Option[types.ConvNet] {
	return func(c types.ConvNet) {
		c.SetInputSize(n)
	}
}

// WithHiddenSize sets the first stage's channel width. The second stage
// doubles it, and the affine input width follows as hiddenSize*2*8*8.
func WithHiddenSize(n int) types.Option[types.ConvNet] {
	return func(c types.ConvNet) {
		c.SetHiddenSize(n)
	}
}

// WithClasses sets the output class count.
func WithClasses(n int) types.Option[types.ConvNet] {
	return func(c types.ConvNet) {
		c.SetClasses(n)
	}
}

// WithKernel sets the convolution kernel size, stride, and padding for both
// stages.
func WithKernel(size, stride, padding int) types.Option[types.ConvNet] {
	return func(c types.ConvNet) {
		c.SetKernel(size, stride, padding)
	}
}

// WithRandomSource seeds parameter initialization for deterministic weights.
func WithRandomSource(src rand.Source) types.Option[types.ConvNet] {
	return func(c types.ConvNet) {
		c.SetRandomSource(src)
	}
}
