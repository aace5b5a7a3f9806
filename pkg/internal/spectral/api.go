package spectral

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"

	"github.com/joeydtaylor/seislab/pkg/internal/seismogram"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// Analyze summarizes a single trace in the frequency domain. The power
// spectrum covers the positive-frequency half of the FFT; the dominant bin
// is taken as signal and everything else as noise for the SNR estimate.
func (a *Analyzer) Analyze(samples []float64, samplingRate float64) (types.SpectralSummary, error) {
	if len(samples) == 0 {
		return types.SpectralSummary{}, fmt.Errorf("spectral: empty trace")
	}
	if samplingRate <= 0 {
		return types.SpectralSummary{}, fmt.Errorf("spectral: sampling rate %v must be positive", samplingRate)
	}

	spectrum := fft.FFTReal(samples)

	powerSpectrum := make([]float64, len(spectrum)/2)
	totalPower := 0.0
	maxPower := 0.0
	dominantIndex := 0
	for i := range powerSpectrum {
		power := cmplx.Abs(spectrum[i]) * cmplx.Abs(spectrum[i])
		powerSpectrum[i] = power
		totalPower += power
		if power > maxPower {
			maxPower = power
			dominantIndex = i
		}
	}

	totalEnergy := 0.0
	for _, v := range samples {
		totalEnergy += v * v
	}

	noisePower := totalPower - maxPower
	snr := math.Inf(1)
	if noisePower > 0 {
		snr = 10 * math.Log10(maxPower/noisePower)
	}

	summary := types.SpectralSummary{
		DominantFrequency: float64(dominantIndex) * samplingRate / float64(len(samples)),
		TotalEnergy:       totalEnergy,
		SNR:               snr,
		PowerSpectrum:     powerSpectrum,
		FrequencyPeaks:    a.findPeaks(powerSpectrum, samplingRate),
	}

	if a.hasLoggers() {
		a.NotifyLoggers(
			types.DebugLevel,
			"trace analyzed",
			"component", a.componentMetadata,
			"event", "Analyze",
			"samples", len(samples),
			"dominantFrequency", summary.DominantFrequency,
			"snr", summary.SNR,
		)
	}
	return summary, nil
}

// AnalyzeBatch summarizes every channel of a batch. Channel names come from
// the metadata's channel template and component order; channels beyond the
// named ones keep an empty name.
func (a *Analyzer) AnalyzeBatch(w types.Waveforms, meta types.Metadata) ([]types.SpectralSummary, error) {
	rate, err := meta.SamplingRate()
	if err != nil {
		return nil, err
	}
	names, err := seismogram.ChannelNames(meta)
	if err != nil {
		return nil, err
	}

	summaries := make([]types.SpectralSummary, 0, w.Channels())
	for i := 0; i < w.Channels(); i++ {
		summary, err := a.Analyze(w.Row(i), rate)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		if i < len(names) {
			summary.Channel = names[i]
		}
		summaries = append(summaries, summary)
	}

	if a.hasLoggers() {
		a.NotifyLoggers(
			types.InfoLevel,
			"batch analyzed",
			"component", a.componentMetadata,
			"event", "AnalyzeBatch",
			"channels", w.Channels(),
			"result", "SUCCESS",
		)
	}
	return summaries, nil
}

// findPeaks collects local maxima of the power spectrum, strongest first,
// capped at the configured count.
func (a *Analyzer) findPeaks(spectrum []float64, samplingRate float64) []types.Peak {
	var peaks []types.Peak
	for i := 1; i < len(spectrum)-1; i++ {
		if spectrum[i] > spectrum[i-1] && spectrum[i] > spectrum[i+1] && spectrum[i] > 0 {
			freq := float64(i) * samplingRate / float64(len(spectrum)*2)
			peaks = append(peaks, types.Peak{Freq: freq, Value: spectrum[i]})
		}
	}

	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Value > peaks[j].Value
	})

	if len(peaks) > a.maxPeaks {
		return peaks[:a.maxPeaks]
	}
	return peaks
}

// SetMaxPeaks caps how many spectral peaks each summary reports.
func (a *Analyzer) SetMaxPeaks(n int) {
	if n > 0 {
		a.maxPeaks = n
	}
}

func (a *Analyzer) GetComponentMetadata() types.ComponentMetadata {
	return a.componentMetadata
}

func (a *Analyzer) SetComponentMetadata(name string, id string) {
	a.componentMetadata.Name = name
	a.componentMetadata.ID = id
}
