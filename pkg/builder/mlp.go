package builder

import (
	"math/rand"

	"github.com/joeydtaylor/seislab/pkg/internal/perceptron"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// MultiLayerPerceptron classifies flattened waveform windows with one
// hidden layer and a softmax output.
type MultiLayerPerceptron = types.Perceptron

// NewMultiLayerPerceptron constructs a perceptron with the given layer
// sizes. All three must be positive.
func NewMultiLayerPerceptron(inputSize, hiddenSize, nClasses int, options ...types.Option[types.Perceptron]) (MultiLayerPerceptron, error) {
	return perceptron.New(inputSize, hiddenSize, nClasses, options...)
}

// MultiLayerPerceptronWithLogger attaches loggers to a perceptron.
func MultiLayerPerceptronWithLogger(logger ...types.Logger) types.Option[types.Perceptron] {
	return perceptron.WithLogger(logger...)
}

// MultiLayerPerceptronWithComponentMetadata overrides the component name and id.
func MultiLayerPerceptronWithComponentMetadata(name string, id string) types.Option[types.Perceptron] {
	return perceptron.WithComponentMetadata(name, id)
}

// MultiLayerPerceptronWithRandomSource seeds parameter initialization for
// deterministic weights.
func MultiLayerPerceptronWithRandomSource(src rand.Source) types.Option[types.Perceptron] {
	return perceptron.WithRandomSource(src)
}
