package perceptron

import (
	"fmt"

	"github.com/joeydtaylor/seislab/pkg/internal/tensor"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
	"gonum.org/v1/gonum/mat"
)

// Forward maps an input batch of shape (batch, inputSize) to a class
// probability batch of shape (batch, classes). Each output row is
// non-negative and sums to 1. The input's column count is validated at the
// first affine boundary; a mismatch fails with an ErrShapeMismatch-wrapped
// error naming both shapes.
func (p *MultiLayerPerceptron) Forward(x *mat.Dense) (*mat.Dense, error) {
	batch, cols := x.Dims()
	if cols != p.inputSize {
		err := fmt.Errorf("%w: input batch is (%d, %d) but the first affine transform expects %d features", types.ErrShapeMismatch, batch, cols, p.inputSize)
		if p.hasLoggers() {
			p.NotifyLoggers(
				types.ErrorLevel,
				"Forward rejected input",
				"component", p.componentMetadata,
				"event", "Forward",
				"result", "FAILURE",
				"error", err,
			)
		}
		return nil, err
	}

	hidden := tensor.Affine(x, p.w1, p.b1)
	tensor.ReLUDense(hidden)

	out := tensor.Affine(hidden, p.w2, p.b2)
	tensor.SoftmaxRows(out)

	if p.hasLoggers() {
		p.NotifyLoggers(
			types.DebugLevel,
			"Forward pass complete",
			"component", p.componentMetadata,
			"event", "Forward",
			"result", "SUCCESS",
			"batch", batch,
			"classes", p.nClasses,
		)
	}

	return out, nil
}

// InputSize returns the expected input feature count.
func (p *MultiLayerPerceptron) InputSize() int { return p.inputSize }

// HiddenSize returns the hidden-layer width.
func (p *MultiLayerPerceptron) HiddenSize() int { return p.hiddenSize }

// Classes returns the output class count.
func (p *MultiLayerPerceptron) Classes() int { return p.nClasses }

// GetComponentMetadata returns the metadata.
func (p *MultiLayerPerceptron) GetComponentMetadata() types.ComponentMetadata {
	return p.componentMetadata
}

// SetComponentMetadata sets the component name and id.
func (p *MultiLayerPerceptron) SetComponentMetadata(name string, id string) {
	p.componentMetadata.Name = name
	p.componentMetadata.ID = id
}
