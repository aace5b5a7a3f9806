package builder

import (
	"github.com/joeydtaylor/seislab/pkg/internal/seismogram"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// Waveforms is a channels-by-samples batch of seismogram traces.
type Waveforms = types.Waveforms

// Metadata carries trace metadata keyed by SeisBench field names.
type Metadata = types.Metadata

// PhaseLabels maps arrival keys to labeled sample indexes.
type PhaseLabels = types.PhaseLabels

// SeisBench metadata field names.
const (
	FieldSamplingRate   = types.FieldSamplingRate
	FieldChannel        = types.FieldChannel
	FieldComponentOrder = types.FieldComponentOrder
)

// Sentinel errors surfaced by waveform and plotting operations.
var (
	ErrShapeMismatch = types.ErrShapeMismatch
	ErrMissingField  = types.ErrMissingField
	ErrUnmappedPhase = types.ErrUnmappedPhase
)

// DefaultAmplitudeScale is the peak amplitude traces are normalized to
// before plotting.
const DefaultAmplitudeScale = seismogram.DefaultAmplitudeScale

// NewWaveforms allocates a zeroed batch.
func NewWaveforms(channels, samples int) (Waveforms, error) {
	return types.NewWaveforms(channels, samples)
}

// WaveformsFromRows builds a batch from per-channel sample slices, which
// must all share one length.
func WaveformsFromRows(rows [][]float64) (Waveforms, error) {
	return types.WaveformsFromRows(rows)
}

// NormalizeWaveforms scales a batch so its global peak amplitude is scale,
// returning a new batch. The input is never mutated.
func NormalizeWaveforms(w Waveforms, scale float64) Waveforms {
	return seismogram.Normalize(w, scale)
}

// TimeAxis returns the time in seconds of each of n samples at the given
// sampling rate.
func TimeAxis(n int, samplingRate float64) []float64 {
	return seismogram.TimeAxis(n, samplingRate)
}

// ChannelNames expands the metadata's channel template with its component
// order, e.g. "HH*" with order ZNE yields HHZ, HHN, HHE.
func ChannelNames(meta Metadata) ([]string, error) {
	return seismogram.ChannelNames(meta)
}

// ApplyToWaveforms runs a per-channel transform over a batch, returning a
// new batch. Transforms must preserve trace length.
func ApplyToWaveforms(w Waveforms, transform types.Transformer[[]float64]) (Waveforms, error) {
	return seismogram.Apply(w, transform)
}
