package spectral

import (
	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// WithLogger creates an option to add one or more loggers to an analyzer.
func WithLogger(logger ...types.Logger) types.Option[types.SpectralAnalyzer] {
	return func(a types.SpectralAnalyzer) {
		a.ConnectLogger(logger...)
	}
}

// WithComponentMetadata overrides the component name and id.
func WithComponentMetadata(name string, id string) types.Option[types.SpectralAnalyzer] {
	return func(a types.SpectralAnalyzer) {
		a.SetComponentMetadata(name, id)
	}
}

// WithMaxPeaks caps how many spectral peaks each summary reports.
func WithMaxPeaks(n int) types.Option[types.SpectralAnalyzer] {
	return func(a types.SpectralAnalyzer) {
		a.SetMaxPeaks(n)
	}
}
