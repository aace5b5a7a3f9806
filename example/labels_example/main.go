package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/joeydtaylor/seislab/pkg/builder"
)

// gaussianCurve puts a probability bump of the given width at center.
func gaussianCurve(n, center int, width float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		d := float64(i - center)
		out[i] = math.Exp(-d * d / (2 * width * width))
	}
	return out
}

// complement fills the noise class: one minus the sum of the phase curves.
func complement(curves ...[]float64) []float64 {
	out := make([]float64, len(curves[0]))
	for i := range out {
		sum := 0.0
		for _, c := range curves {
			sum += c[i]
		}
		out[i] = math.Max(0, 1-sum)
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
	rows := make([][]float64, 3)
	for i := range rows {
		rows[i] = make([]float64, samples)
		for j := range rows[i] {
			t := float64(j) / rate
			rows[i][j] = math.Sin(2*math.Pi*2*t) + 0.1*rng.NormFloat64()
		}
	}
	w, err := builder.WaveformsFromRows(rows)
	if err != nil {
		fmt.Printf("Error building waveforms: %v\n", err)
		return
	}

	meta := builder.Metadata{
		builder.FieldSamplingRate:   rate,
		builder.FieldChannel:        "HH*",
		builder.FieldComponentOrder: "ZNE",
	}

	// Ground truth puts tight bumps at the arrivals; the "prediction" is a
	// blurrier, slightly shifted version of the same.
	pTrue := gaussianCurve(samples, pPick, 20)
	sTrue := gaussianCurve(samples, sPick, 20)
	truth := [][]float64{pTrue, sTrue, complement(pTrue, sTrue)}

	pPred := gaussianCurve(samples, pPick+15, 45)
	sPred := gaussianCurve(samples, sPick-25, 60)
	pred := [][]float64{pPred, sPred, complement(pPred, sPred)}

	fig, err := builder.PlotWaveformsAndLabels(w, meta, truth, pred)
	if err != nil {
		fmt.Printf("Error building figure: %v\n", err)
		return
	}
	fig.ConnectLogger(logger)

	f, err := os.Create("labels.png")
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		return
	}
	defer f.Close()

	if err := fig.WritePNG(f); err != nil {
		fmt.Printf("Error writing PNG: %v\n", err)
		return
	}
	fmt.Println("Wrote labels.png")
}
