package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/joeydtaylor/seislab/pkg/builder"
)

// arrivalTrace is quiet until the arrival sample, then rings down.
func arrivalTrace(n, arrival int, rng *rand.Rand) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.05 * rng.NormFloat64()
		if i >= arrival {
			decay := math.Exp(-float64(i-arrival) / 400)
			out[i] += decay * math.Sin(2*math.Pi*float64(i-arrival)/25)
		}
	}
	return out
}

func main() {
	logger := builder.NewLogger(builder.LoggerWithDevelopment(true))
	defer logger.Flush()

	const (
		samples = 3000
		rate    = 100.0
		pPick   = 800
		sPick   = 1400
	)
	rng := rand.New(rand.NewSource(42))
	w, err := builder.WaveformsFromRows([][]float64{
		arrivalTrace(samples, pPick, rng),
		arrivalTrace(samples, sPick, rng),
		arrivalTrace(samples, sPick+60, rng),
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
	labels := builder.PhaseLabels{
		builder.FieldSamplingRate: rate,
		"trace_p_arrival_sample":  pPick,
		"trace_s_arrival_sample":  sPick,
	}

	ax, err := builder.PlotWaveforms(w, meta, builder.NewAxis(builder.AxisWithLogger(logger)))
	if err != nil {
		fmt.Printf("Error plotting waveforms: %v\n", err)
		return
	}
	if _, err := builder.AddPicks(labels, nil, ax); err != nil {
		fmt.Printf("Error adding picks: %v\n", err)
		return
	}

	f, err := os.Create("picks.png")
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		return
	}
	defer f.Close()

	if err := ax.WritePNG(f); err != nil {
		fmt.Printf("Error writing PNG: %v\n", err)
		return
	}
	fmt.Println("Wrote picks.png")
}
