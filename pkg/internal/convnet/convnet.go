// Package convnet implements the small convolutional classifier used in the
// teaching notebooks: two stages of convolution, rectified-linear
// nonlinearity, and 2x2 max pooling, then a flatten, one affine transform to
// the class count, and a row-wise softmax.
//
// The flatten-to-affine boundary assumes the two pooling stages reduce the
// feature map to 8x8 per channel, which under the default kernel geometry
// holds for 32x32 inputs (32 -> 16 -> 8). Construction cannot see the
// input's actual height and width, so the assumption is checked when the
// first batch flows through Forward, not at New.
package convnet

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/joeydtaylor/seislab/pkg/internal/tensor"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
	"github.com/joeydtaylor/seislab/pkg/internal/utils"
	"gonum.org/v1/gonum/mat"
)

// Architecture defaults, matching the notebook exercises.
const (
	DefaultInputSize  = 28 * 28
	DefaultClasses    = 10
	DefaultHiddenSize = 16
	DefaultKernelSize = 5
	DefaultStride     = 1
	DefaultPadding    = 2

	// pooledDim is the spatial edge length each channel is assumed to have
	// after the two pooling stages; it sizes the classifier head.
	pooledDim = 8
)

// ConvolutionalNeuralNetwork is the concrete types.ConvNet implementation.
type ConvolutionalNeuralNetwork struct {
	componentMetadata types.ComponentMetadata

	inputSize  int // Informational only; the actual shape is inferred from data.
	nClasses   int
	hiddenSize int
	kernelSize int
	stride     int
	padding    int

	conv1Kernels tensor.Tensor4 // (hiddenSize, 1, kernelSize, kernelSize)
	conv1Bias    []float64
	conv2Kernels tensor.Tensor4 // (hiddenSize*2, hiddenSize, kernelSize, kernelSize)
	conv2Bias    []float64
	fcWeights    *mat.Dense // (nClasses, hiddenSize*2*8*8)
	fcBias       []float64

	rng *rand.Rand

	loggers     []types.Logger
	loggersLock sync.Mutex
	loggerCount int32
}

// New constructs a convolutional network with the architecture defaults,
// overridable per option. Parameters are allocated and randomly initialized
// after options have been applied.
func New(options ...types.Option[types.ConvNet]) types.ConvNet {
	c := &ConvolutionalNeuralNetwork{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "CONVNET",
		},
		inputSize:  DefaultInputSize,
		nClasses:   DefaultClasses,
		hiddenSize: DefaultHiddenSize,
		kernelSize: DefaultKernelSize,
		stride:     DefaultStride,
		padding:    DefaultPadding,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		loggers:    make([]types.Logger, 0),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	c.conv1Kernels, c.conv1Bias = c.initConv(c.hiddenSize, 1)
	c.conv2Kernels, c.conv2Bias = c.initConv(c.hiddenSize*2, c.hiddenSize)
	c.fcWeights, c.fcBias = c.initAffine(c.nClasses, c.flatWidth())

	if c.hasLoggers() {
		c.NotifyLoggers(
			types.InfoLevel,
			"ConvNet constructed",
			"component", c.componentMetadata,
			"event", "New",
			"result", "SUCCESS",
			"classes", c.nClasses,
			"hiddenSize", c.hiddenSize,
			"kernelSize", c.kernelSize,
			"stride", c.stride,
			"padding", c.padding,
		)
	}

	return c
}

// flatWidth is the affine input width fixed by the post-pooling assumption.
func (c *ConvolutionalNeuralNetwork) flatWidth() int {
	return c.hiddenSize * 2 * pooledDim * pooledDim
}

func (c *ConvolutionalNeuralNetwork) initConv(outChannels, inChannels int) (tensor.Tensor4, []float64) {
	kernels, err := tensor.New(outChannels, inChannels, c.kernelSize, c.kernelSize)
	if err != nil {
		panic(err) // Geometry is internal; only negative sizes could land here.
	}
	fanIn := inChannels * c.kernelSize * c.kernelSize
	scale := 1 / math.Sqrt(float64(fanIn))
	for i := range kernels.Data {
		kernels.Data[i] = (2*c.rng.Float64() - 1) * scale
	}
	bias := make([]float64, outChannels)
	for i := range bias {
		bias[i] = (2*c.rng.Float64() - 1) * scale
	}
	return kernels, bias
}

func (c *ConvolutionalNeuralNetwork) initAffine(rows, cols int) (*mat.Dense, []float64) {
	scale := 1 / math.Sqrt(float64(cols))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (2*c.rng.Float64() - 1) * scale
	}
	bias := make([]float64, rows)
	for i := range bias {
		bias[i] = (2*c.rng.Float64() - 1) * scale
	}
	return mat.NewDense(rows, cols, data), bias
}
