package main

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/joeydtaylor/seislab/pkg/builder"
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithDevelopment(true))
	defer logger.Flush()

	const (
		inputSize  = 400
		hiddenSize = 32
		nClasses   = 3
		batch      = 4
	)

	mlp, err := builder.NewMultiLayerPerceptron(
		inputSize, hiddenSize, nClasses,
		builder.MultiLayerPerceptronWithLogger(logger),
		builder.MultiLayerPerceptronWithRandomSource(rand.NewSource(42)),
	)
	if err != nil {
		fmt.Printf("Error building perceptron: %v\n", err)
		return
	}

	// A batch of flattened waveform windows.
	rng := rand.New(rand.NewSource(7))
	x := mat.NewDense(batch, inputSize, nil)
	for i := 0; i < batch; i++ {
		for j := 0; j < inputSize; j++ {
			x.Set(i, j, rng.NormFloat64())
		}
	}

	probs, err := mlp.Forward(x)
	if err != nil {
		fmt.Printf("Error running forward pass: %v\n", err)
		return
	}

	rows, cols := probs.Dims()
	fmt.Printf("Class probabilities (%d examples, %d classes):\n", rows, cols)
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			sum += probs.At(i, j)
		}
		fmt.Printf("  example %d: %v (sum %.6f)\n", i, mat.Formatted(probs.RowView(i).T()), sum)
	}
}
