// Package seismogram provides the waveform-batch operations the
// visualization layer is built on: joint amplitude normalization, time-axis
// derivation from a sampling rate, channel naming from a metadata template,
// and per-channel transform application. Every operation returns fresh data;
// none mutates the caller's batch.
package seismogram

import (
	"fmt"
	"math"
	"strings"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
	"gonum.org/v1/gonum/floats"
)

// DefaultAmplitudeScale is the fraction of the vertical channel slot a
// normalized batch's global peak occupies, leaving headroom between the
// offset traces of a stacked plot.
const DefaultAmplitudeScale = 0.8

// Normalize scales the whole batch jointly by its global peak absolute
// amplitude so the largest excursion lands at scale. The result is a new
// batch; the input's backing data is never touched. A silent batch (all
// zeros) comes back as an unscaled copy.
func Normalize(w types.Waveforms, scale float64) types.Waveforms {
	out := w.Clone()
	data := out.Data()
	if len(data) == 0 {
		return out
	}

	peak := math.Max(math.Abs(floats.Max(data)), math.Abs(floats.Min(data)))
	if peak == 0 {
		return out
	}

	floats.Scale(scale/peak, data)
	return out
}

// TimeAxis returns the time in seconds of each of n samples at the given
// sampling rate: 0, 1/rate, 2/rate, ...
func TimeAxis(n int, samplingRate float64) []float64 {
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / samplingRate
	}
	return times
}

// ChannelNames derives one name per component by substituting each component
// code into the wildcard position of the metadata's channel template, e.g.
// template "HH*" with order ["Z", "N", "E"] yields ["HHZ", "HHN", "HHE"].
func ChannelNames(meta types.Metadata) ([]string, error) {
	template, err := meta.ChannelTemplate()
	if err != nil {
		return nil, err
	}
	order, err := meta.ComponentOrder()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(order))
	for i, code := range order {
		names[i] = strings.Replace(template, "*", code, 1)
	}
	return names, nil
}

// Apply runs a per-channel transform over the batch, producing a new batch.
// The transform receives a copy of each row and must return a row of the same
// length; a transform error or a length change aborts the whole application.
func Apply(w types.Waveforms, transform types.Transformer[[]float64]) (types.Waveforms, error) {
	if transform == nil {
		return w.Clone(), nil
	}

	out := w.Clone()
	for c := 0; c < out.Channels(); c++ {
		row := make([]float64, w.Samples())
		copy(row, w.Row(c))

		transformed, err := transform(row)
		if err != nil {
			return types.Waveforms{}, fmt.Errorf("transforming channel %d: %w", c, err)
		}
		if len(transformed) != out.Samples() {
			return types.Waveforms{}, fmt.Errorf("%w: transform changed channel %d length from %d to %d", types.ErrShapeMismatch, c, out.Samples(), len(transformed))
		}
		copy(out.Row(c), transformed)
	}
	return out, nil
}
