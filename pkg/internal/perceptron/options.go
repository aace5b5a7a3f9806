package perceptron

import (
	"math/rand"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// WithLogger creates an option to add one or more loggers to a perceptron.
func WithLogger(logger ...types.Logger) types.Option[types.Perceptron] {
	return func(p types.Perceptron) {
		p.ConnectLogger(logger...)
	}
}

// WithComponentMetadata overrides the component name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Perceptron] {
	return func(p types.Perceptron) {
		p.SetComponentMetadata(name, id)
	}
}

// WithRandomSource seeds parameter initialization for deterministic weights.
func WithRandomSource(src rand.Source) types.Option[types.Perceptron] {
	return func(p types.Perceptron) {
		p.SetRandomSource(src)
	}
}
