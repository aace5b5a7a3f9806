package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/joeydtaylor/seislab/pkg/builder"
)

// syntheticTrace mixes a couple of tones with noise, roughly shaped like a
// bandpassed seismogram.
func syntheticTrace(n int, rate float64, rng *rand.Rand) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / rate
		out[i] = math.Sin(2*math.Pi*1.5*t) + 0.4*math.Sin(2*math.Pi*6*t) + 0.1*rng.NormFloat64()
	}
	return out
}

func main() {
	logger := builder.NewLogger(builder.LoggerWithDevelopment(true))
	defer logger.Flush()

	const (
		samples = 3000
		rate    = 100.0
	)
	rng := rand.New(rand.NewSource(42))
	w, err := builder.WaveformsFromRows([][]float64{
		syntheticTrace(samples, rate, rng),
		syntheticTrace(samples, rate, rng),
		syntheticTrace(samples, rate, rng),
	})
	if err != nil {
		fmt.Printf("Error building waveforms: %v\n", err)
		return
	}

	meta := builder.Metadata{
		builder.FieldSamplingRate:   rate,
		builder.FieldChannel:        "HH*",
		builder.FieldComponentOrder: "ZNE",
	}

	ax, err := builder.PlotWaveforms(w, meta, builder.NewAxis(builder.AxisWithLogger(logger)))
	if err != nil {
		fmt.Printf("Error plotting waveforms: %v\n", err)
		return
	}

	f, err := os.Create("waveforms.png")
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		return
	}
	defer f.Close()

	if err := ax.WritePNG(f); err != nil {
		fmt.Printf("Error writing PNG: %v\n", err)
		return
	}
	fmt.Println("Wrote waveforms.png")
}
