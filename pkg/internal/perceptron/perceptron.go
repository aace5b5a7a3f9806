// Package perceptron implements the fully connected classifier with one
// hidden layer used in the teaching notebooks: affine to the hidden width, a
// rectified-linear nonlinearity, affine to the class count, then a row-wise
// softmax producing a probability distribution per example.
//
// The component holds its randomly initialized parameters from construction
// onward; Forward is a stateless pass over that snapshot. Training is the
// notebooks' concern, not this package's.
package perceptron

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
	"github.com/joeydtaylor/seislab/pkg/internal/utils"
	"gonum.org/v1/gonum/mat"
)

// MultiLayerPerceptron is the concrete types.Perceptron implementation.
type MultiLayerPerceptron struct {
	componentMetadata types.ComponentMetadata

	inputSize  int
	hiddenSize int
	nClasses   int

	w1 *mat.Dense // (hiddenSize, inputSize)
	b1 []float64
	w2 *mat.Dense // (nClasses, hiddenSize)
	b2 []float64

	rng *rand.Rand

	loggers     []types.Logger
	loggersLock sync.Mutex
	loggerCount int32
}

// New constructs a perceptron with the given layer sizes. All three sizes
// must be positive. Parameters are allocated and randomly initialized here,
// after options have been applied, so WithRandomSource yields deterministic
// weights.
func New(inputSize, hiddenSize, nClasses int, options ...types.Option[types.Perceptron]) (types.Perceptron, error) {
	if inputSize <= 0 || hiddenSize <= 0 || nClasses <= 0 {
		return nil, fmt.Errorf("perceptron: layer sizes (%d, %d, %d) must all be positive", inputSize, hiddenSize, nClasses)
	}

	p := &MultiLayerPerceptron{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "PERCEPTRON",
		},
		inputSize:  inputSize,
		hiddenSize: hiddenSize,
		nClasses:   nClasses,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		loggers:    make([]types.Logger, 0),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	p.w1, p.b1 = p.initAffine(hiddenSize, inputSize)
	p.w2, p.b2 = p.initAffine(nClasses, hiddenSize)

	if p.hasLoggers() {
		p.NotifyLoggers(
			types.InfoLevel,
			"Perceptron constructed",
			"component", p.componentMetadata,
			"event", "New",
			"result", "SUCCESS",
			"inputSize", inputSize,
			"hiddenSize", hiddenSize,
			"classes", nClasses,
		)
	}

	return p, nil
}

// initAffine allocates a (rows, cols) weight matrix and a bias vector with
// entries drawn uniformly from ±1/sqrt(cols), scaling by the layer fan-in.
func (p *MultiLayerPerceptron) initAffine(rows, cols int) (*mat.Dense, []float64) {
	scale := 1 / math.Sqrt(float64(cols))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (2*p.rng.Float64() - 1) * scale
	}
	bias := make([]float64, rows)
	for i := range bias {
		bias[i] = (2*p.rng.Float64() - 1) * scale
	}
	return mat.NewDense(rows, cols, data), bias
}
