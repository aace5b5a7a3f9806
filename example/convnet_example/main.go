package main

import (
	"fmt"
	"math/rand"

	"github.com/joeydtaylor/seislab/pkg/builder"
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithDevelopment(true))
	defer logger.Flush()

	net := builder.NewConvolutionalNeuralNetwork(
		builder.ConvolutionalNeuralNetworkWithLogger(logger),
		builder.ConvolutionalNeuralNetworkWithRandomSource(rand.NewSource(42)),
	)

	// A batch of two single-channel 32x32 spectrogram windows; that spatial
	// size pools down to the 8x8 feature maps the classifier head expects.
	const (
		batch = 2
		side  = 32
	)
	rng := rand.New(rand.NewSource(7))
	data := make([]float64, batch*side*side)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	x, err := builder.Tensor4FromData(batch, 1, side, side, data)
	if err != nil {
		fmt.Printf("Error building input tensor: %v\n", err)
		return
	}

	probs, features, err := net.Forward(x)
	if err != nil {
		fmt.Printf("Error running forward pass: %v\n", err)
		return
	}

	pr, pc := probs.Dims()
	fr, fc := features.Dims()
	fmt.Printf("Probabilities: %d examples x %d classes\n", pr, pc)
	fmt.Printf("Flattened features: %d examples x %d values\n", fr, fc)
	for i := 0; i < pr; i++ {
		best, bestProb := 0, probs.At(i, 0)
		for j := 1; j < pc; j++ {
			if probs.At(i, j) > bestProb {
				best, bestProb = j, probs.At(i, j)
			}
		}
		fmt.Printf("  example %d: class %d (p=%.4f)\n", i, best, bestProb)
	}
}
