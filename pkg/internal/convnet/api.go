package convnet

import (
	"fmt"

	"github.com/joeydtaylor/seislab/pkg/internal/tensor"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
	"gonum.org/v1/gonum/mat"
)

// Forward maps an input batch of shape (batch, 1, H, W) through both
// convolutional stages, then flattens and classifies. It returns the class
// probability batch (each row non-negative, summing to 1) and the flattened
// pre-affine feature batch of shape (batch, hiddenSize*2*8*8), exposed for
// downstream inspection such as embedding plots.
//
// Inputs whose spatial dims do not reduce to 8x8 after the two pooling
// stages fail at the flatten-to-affine boundary with an
// ErrShapeMismatch-wrapped error; construction never sees H and W, so the
// failure cannot surface earlier.
func (c *ConvolutionalNeuralNetwork) Forward(x tensor.Tensor4) (*mat.Dense, *mat.Dense, error) {
	if x.C != 1 {
		return nil, nil, c.forwardFailure(fmt.Errorf("%w: input batch has %d channels, the first convolution expects 1", types.ErrShapeMismatch, x.C))
	}

	stage1, err := tensor.Conv2D(x, c.conv1Kernels, c.conv1Bias, c.stride, c.padding)
	if err != nil {
		return nil, nil, c.forwardFailure(fmt.Errorf("%w: first convolution: %v", types.ErrShapeMismatch, err))
	}
	tensor.ReLU(stage1)
	pooled1, err := tensor.MaxPool2D(stage1, 2)
	if err != nil {
		return nil, nil, c.forwardFailure(fmt.Errorf("%w: first pooling: %v", types.ErrShapeMismatch, err))
	}

	stage2, err := tensor.Conv2D(pooled1, c.conv2Kernels, c.conv2Bias, c.stride, c.padding)
	if err != nil {
		return nil, nil, c.forwardFailure(fmt.Errorf("%w: second convolution: %v", types.ErrShapeMismatch, err))
	}
	tensor.ReLU(stage2)
	pooled2, err := tensor.MaxPool2D(stage2, 2)
	if err != nil {
		return nil, nil, c.forwardFailure(fmt.Errorf("%w: second pooling: %v", types.ErrShapeMismatch, err))
	}

	features := pooled2.Flatten()
	_, flatCols := features.Dims()
	if flatCols != c.flatWidth() {
		return nil, nil, c.forwardFailure(fmt.Errorf(
			"%w: pooled feature map flattens to %d values per example (%dx%dx%d) but the affine transform expects %d (%dx%dx%d); input spatial dims must reduce to %dx%d after two pooling stages",
			types.ErrShapeMismatch,
			flatCols, pooled2.C, pooled2.H, pooled2.W,
			c.flatWidth(), c.hiddenSize*2, pooledDim, pooledDim,
			pooledDim, pooledDim,
		))
	}

	probs := tensor.Affine(features, c.fcWeights, c.fcBias)
	tensor.SoftmaxRows(probs)

	if c.hasLoggers() {
		c.NotifyLoggers(
			types.DebugLevel,
			"Forward pass complete",
			"component", c.componentMetadata,
			"event", "Forward",
			"result", "SUCCESS",
			"batch", x.N,
			"classes", c.nClasses,
			"featureWidth", flatCols,
		)
	}

	return probs, features, nil
}

func (c *ConvolutionalNeuralNetwork) forwardFailure(err error) error {
	if c.hasLoggers() {
		c.NotifyLoggers(
			types.ErrorLevel,
			"Forward rejected input",
			"component", c.componentMetadata,
			"event", "Forward",
			"result", "FAILURE",
			"error", err,
		)
	}
	return err
}

// InputSize returns the informational input size the model was built for.
func (c *ConvolutionalNeuralNetwork) InputSize() int { return c.inputSize }

// HiddenSize returns the first stage's channel width.
func (c *ConvolutionalNeuralNetwork) HiddenSize() int { return c.hiddenSize }

// Classes returns the output class count.
func (c *ConvolutionalNeuralNetwork) Classes() int { return c.nClasses }

// Kernel returns the convolution kernel size, stride, and padding.
func (c *ConvolutionalNeuralNetwork) Kernel() (size, stride, padding int) {
	return c.kernelSize, c.stride, c.padding
}

// GetComponentMetadata returns the metadata.
func (c *ConvolutionalNeuralNetwork) GetComponentMetadata() types.ComponentMetadata {
	return c.componentMetadata
}

// SetComponentMetadata sets the component name and id.
func (c *ConvolutionalNeuralNetwork) SetComponentMetadata(name string, id string) {
	c.componentMetadata.Name = name
	c.componentMetadata.ID = id
}
