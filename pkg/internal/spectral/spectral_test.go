package spectral_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/seislab/pkg/internal/spectral"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// sine samples a pure tone of the given frequency.
func sine(n int, freq, rate float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
	}
	return out
}

func TestAnalyzeDominantFrequencyOfPureTone(t *testing.T) {
	const (
		rate = 100.0
		freq = 5.0
		n    = 1000
	)
	a := spectral.New()
	summary, err := a.Analyze(sine(n, freq, rate), rate)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if math.Abs(summary.DominantFrequency-freq) > rate/float64(n) {
		t.Fatalf("dominant frequency %v, want %v", summary.DominantFrequency, freq)
	}
}

func TestAnalyzeTotalEnergy(t *testing.T) {
	const (
		rate = 100.0
		n    = 1000
	)
	// A unit sine over whole periods carries energy n/2.
	a := spectral.New()
	summary, err := a.Analyze(sine(n, 5, rate), rate)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if math.Abs(summary.TotalEnergy-float64(n)/2) > 1 {
		t.Fatalf("total energy %v, want about %v", summary.TotalEnergy, float64(n)/2)
	}
}

func TestAnalyzePureToneHasHighSNR(t *testing.T) {
	const rate = 100.0
	a := spectral.New()
	summary, err := a.Analyze(sine(1000, 5, rate), rate)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if summary.SNR < 20 {
		t.Fatalf("SNR %v dB for a pure tone, want well above the noise floor", summary.SNR)
	}
}

func TestAnalyzePeakCap(t *testing.T) {
	const rate = 100.0
	mixed := sine(1000, 5, rate)
	for i, v := range sine(1000, 12, rate) {
		mixed[i] += 0.5 * v
	}
	for i, v := range sine(1000, 23, rate) {
		mixed[i] += 0.25 * v
	}

	a := spectral.New(spectral.WithMaxPeaks(2))
	summary, err := a.Analyze(mixed, rate)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(summary.FrequencyPeaks) > 2 {
		t.Fatalf("got %d peaks, want at most 2", len(summary.FrequencyPeaks))
	}
	for i := 1; i < len(summary.FrequencyPeaks); i++ {
		if summary.FrequencyPeaks[i].Value > summary.FrequencyPeaks[i-1].Value {
			t.Fatal("peaks are not sorted strongest first")
		}
	}
}

func TestAnalyzeRejectsEmptyTrace(t *testing.T) {
	a := spectral.New()
	if _, err := a.Analyze(nil, 100); err == nil {
		t.Fatal("expected an error for an empty trace")
	}
}

func TestAnalyzeRejectsBadRate(t *testing.T) {
	a := spectral.New()
	if _, err := a.Analyze(sine(100, 5, 100), 0); err == nil {
		t.Fatal("expected an error for a zero sampling rate")
	}
}

func TestAnalyzeBatchNamesChannels(t *testing.T) {
	rows := [][]float64{
		sine(500, 2, 100),
		sine(500, 8, 100),
		sine(500, 15, 100),
	}
	w, err := types.WaveformsFromRows(rows)
	if err != nil {
		t.Fatalf("build waveforms: %v", err)
	}
	meta := types.Metadata{
		types.FieldSamplingRate:   100.0,
		types.FieldChannel:        "HH*",
		types.FieldComponentOrder: "ZNE",
	}

	a := spectral.New()
	summaries, err := a.AnalyzeBatch(w, meta)
	if err != nil {
		t.Fatalf("AnalyzeBatch: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, want 3", len(summaries))
	}
	wantNames := []string{"HHZ", "HHN", "HHE"}
	wantFreqs := []float64{2, 8, 15}
	for i, s := range summaries {
		if s.Channel != wantNames[i] {
			t.Fatalf("channel %d named %q, want %q", i, s.Channel, wantNames[i])
		}
		if math.Abs(s.DominantFrequency-wantFreqs[i]) > 0.5 {
			t.Fatalf("channel %d dominant frequency %v, want %v", i, s.DominantFrequency, wantFreqs[i])
		}
	}
}

func TestAnalyzeBatchMissingMetadata(t *testing.T) {
	w, err := types.WaveformsFromRows([][]float64{sine(100, 5, 100)})
	if err != nil {
		t.Fatalf("build waveforms: %v", err)
	}
	a := spectral.New()
	if _, err := a.AnalyzeBatch(w, types.Metadata{}); err == nil {
		t.Fatal("expected an error for missing metadata")
	}
}
