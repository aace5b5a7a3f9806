package builder

import (
	"math/rand"

	"github.com/joeydtaylor/seislab/pkg/internal/convnet"
	"github.com/joeydtaylor/seislab/pkg/internal/tensor"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// ConvolutionalNeuralNetwork classifies 2-D waveform windows with two
// convolution/pooling stages and a softmax output, also exposing the
// flattened feature map of its last pooling stage.
type ConvolutionalNeuralNetwork = types.ConvNet

// Tensor4 is the NCHW batch tensor the network consumes.
type Tensor4 = tensor.Tensor4

// NewTensor4 allocates a zeroed NCHW tensor.
func NewTensor4(n, c, h, w int) (Tensor4, error) {
	return tensor.New(n, c, h, w)
}

// Tensor4FromData wraps existing row-major NCHW data without copying.
func Tensor4FromData(n, c, h, w int, data []float64) (Tensor4, error) {
	return tensor.FromData(n, c, h, w, data)
}

// NewConvolutionalNeuralNetwork constructs a network with the default
// geometry unless overridden by options.
func NewConvolutionalNeuralNetwork(options ...types.Option[types.ConvNet]) ConvolutionalNeuralNetwork {
	return convnet.New(options...)
}

// ConvolutionalNeuralNetworkWithLogger attaches loggers to a network.
func ConvolutionalNeuralNetworkWithLogger(logger ...types.Logger) types.Option[types.ConvNet] {
	return convnet.WithLogger(logger...)
}

// ConvolutionalNeuralNetworkWithComponentMetadata overrides the component name and id.
func ConvolutionalNeuralNetworkWithComponentMetadata(name string, id string) types.Option[types.ConvNet] {
	return convnet.WithComponentMetadata(name, id)
}

// ConvolutionalNeuralNetworkWithInputSize sets the flattened input size
// hyperparameter.
func ConvolutionalNeuralNetworkWithInputSize(n int) types.Option[types.ConvNet] {
	return convnet.WithInputSize(n)
}

// ConvolutionalNeuralNetworkWithHiddenSize sets the first-stage channel count.
func ConvolutionalNeuralNetworkWithHiddenSize(n int) types.Option[types.ConvNet] {
	return convnet.WithHiddenSize(n)
}

// ConvolutionalNeuralNetworkWithClasses sets the output class count.
func ConvolutionalNeuralNetworkWithClasses(n int) types.Option[types.ConvNet] {
	return convnet.WithClasses(n)
}

// ConvolutionalNeuralNetworkWithKernel sets the convolution geometry shared
// by both stages.
func ConvolutionalNeuralNetworkWithKernel(size, stride, padding int) types.Option[types.ConvNet] {
	return convnet.WithKernel(size, stride, padding)
}

// ConvolutionalNeuralNetworkWithRandomSource seeds parameter initialization
// for deterministic weights.
func ConvolutionalNeuralNetworkWithRandomSource(src rand.Source) types.Option[types.ConvNet] {
	return convnet.WithRandomSource(src)
}
