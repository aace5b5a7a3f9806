package builder

import (
	"github.com/joeydtaylor/seislab/pkg/internal/spectral"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// SpectralAnalyzer computes frequency-domain summaries of traces.
type SpectralAnalyzer = types.SpectralAnalyzer

// SpectralSummary holds the frequency-domain profile of one trace.
type SpectralSummary = types.SpectralSummary

// Peak is one local maximum of a power spectrum.
type Peak = types.Peak

// NewSpectralAnalyzer constructs a spectral analyzer.
func NewSpectralAnalyzer(options ...types.Option[types.SpectralAnalyzer]) SpectralAnalyzer {
	return spectral.New(options...)
}

// SpectralAnalyzerWithLogger attaches loggers to an analyzer.
func SpectralAnalyzerWithLogger(logger ...types.Logger) types.Option[types.SpectralAnalyzer] {
	return spectral.WithLogger(logger...)
}

// SpectralAnalyzerWithComponentMetadata overrides the component name and id.
func SpectralAnalyzerWithComponentMetadata(name string, id string) types.Option[types.SpectralAnalyzer] {
	return spectral.WithComponentMetadata(name, id)
}

// SpectralAnalyzerWithMaxPeaks caps how many spectral peaks each summary
// reports.
func SpectralAnalyzerWithMaxPeaks(n int) types.Option[types.SpectralAnalyzer] {
	return spectral.WithMaxPeaks(n)
}
