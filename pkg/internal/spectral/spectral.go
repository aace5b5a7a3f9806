// Package spectral computes frequency-domain summaries of seismogram
// traces: power spectrum, dominant frequency, time-domain energy, SNR, and
// the strongest spectral peaks. The notebooks use it to inspect waveform
// batches before and after classification.
package spectral

import (
	"sync"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
	"github.com/joeydtaylor/seislab/pkg/internal/utils"
)

// DefaultMaxPeaks caps how many local spectral maxima a summary reports.
const DefaultMaxPeaks = 5

// Analyzer is the concrete types.SpectralAnalyzer implementation.
type Analyzer struct {
	componentMetadata types.ComponentMetadata

	maxPeaks int

	loggers     []types.Logger
	loggersLock sync.Mutex
	loggerCount int32
}

// New constructs an analyzer reporting at most DefaultMaxPeaks peaks
// unless overridden.
func New(options ...types.Option[types.SpectralAnalyzer]) types.SpectralAnalyzer {
	a := &Analyzer{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SPECTRAL_ANALYZER",
		},
		maxPeaks: DefaultMaxPeaks,
		loggers:  make([]types.Logger, 0),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}
