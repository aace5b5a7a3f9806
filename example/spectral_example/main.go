package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/joeydtaylor/seislab/pkg/builder"
)

func tone(n int, freq, amplitude, rate float64, rng *rand.Rand) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / rate
		out[i] = amplitude*math.Sin(2*math.Pi*freq*t) + 0.02*rng.NormFloat64()
	}
	return out
}

func main() {
	logger := builder.NewLogger(builder.LoggerWithDevelopment(true))
	defer logger.Flush()

	const (
		samples = 4096
		rate    = 100.0
	)
	rng := rand.New(rand.NewSource(42))
	w, err := builder.WaveformsFromRows([][]float64{
		tone(samples, 1.5, 1.0, rate, rng),
		tone(samples, 6.0, 0.7, rate, rng),
		tone(samples, 12.0, 0.4, rate, rng),
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

	analyzer := builder.NewSpectralAnalyzer(
		builder.SpectralAnalyzerWithLogger(logger),
		builder.SpectralAnalyzerWithMaxPeaks(3),
	)

	summaries, err := analyzer.AnalyzeBatch(w, meta)
	if err != nil {
		fmt.Printf("Error analyzing batch: %v\n", err)
		return
	}

	for _, s := range summaries {
		fmt.Printf("%s: dominant %.2f Hz, energy %.1f, SNR %.1f dB\n",
			s.Channel, s.DominantFrequency, s.TotalEnergy, s.SNR)
		for _, p := range s.FrequencyPeaks {
			fmt.Printf("  peak %.2f Hz (power %.1f)\n", p.Freq, p.Value)
		}
	}
}
