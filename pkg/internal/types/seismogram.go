package types

import "fmt"

// SeisBench-style metadata and label field names. These are the keys the
// visualization operations unconditionally read.
const (
	FieldSamplingRate   = "trace_sampling_rate_hz"
	FieldChannel        = "trace_channel"
	FieldComponentOrder = "trace_component_order"
)

// Waveforms is a batch of seismogram traces indexed by (channel, sample),
// backed by a single row-major float64 slice. All channels in one batch share
// the same sampling rate and length.
type Waveforms struct {
	data     []float64
	channels int
	samples  int
}

// NewWaveforms allocates a zeroed batch of the given geometry.
func NewWaveforms(channels, samples int) (Waveforms, error) {
	if channels < 0 || samples < 0 {
		return Waveforms{}, fmt.Errorf("%w: waveform batch geometry (%d, %d) is negative", ErrShapeMismatch, channels, samples)
	}
	return Waveforms{
		data:     make([]float64, channels*samples),
		channels: channels,
		samples:  samples,
	}, nil
}

// WaveformsFromRows builds a batch from one slice per channel. Every row must
// have the same length; the rows are copied, so the batch does not alias the
// caller's slices.
func WaveformsFromRows(rows [][]float64) (Waveforms, error) {
	if len(rows) == 0 {
		return Waveforms{}, nil
	}
	samples := len(rows[0])
	for i, row := range rows {
		if len(row) != samples {
			return Waveforms{}, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d", ErrShapeMismatch, i, len(row), samples)
		}
	}
	w := Waveforms{
		data:     make([]float64, len(rows)*samples),
		channels: len(rows),
		samples:  samples,
	}
	for i, row := range rows {
		copy(w.data[i*samples:(i+1)*samples], row)
	}
	return w, nil
}

// Channels returns the number of traces in the batch.
func (w Waveforms) Channels() int { return w.channels }

// Samples returns the per-channel sample count.
func (w Waveforms) Samples() int { return w.samples }

// At returns the sample at (channel, sample). Out-of-range indexes panic the
// same way a slice index does.
func (w Waveforms) At(channel, sample int) float64 {
	if channel < 0 || channel >= w.channels || sample < 0 || sample >= w.samples {
		panic(fmt.Sprintf("waveforms: index (%d, %d) out of range (%d, %d)", channel, sample, w.channels, w.samples))
	}
	return w.data[channel*w.samples+sample]
}

// Set writes the sample at (channel, sample).
func (w Waveforms) Set(channel, sample int, v float64) {
	if channel < 0 || channel >= w.channels || sample < 0 || sample >= w.samples {
		panic(fmt.Sprintf("waveforms: index (%d, %d) out of range (%d, %d)", channel, sample, w.channels, w.samples))
	}
	w.data[channel*w.samples+sample] = v
}

// Row returns the channel's samples as a view into the batch's backing slice.
// Mutating the returned slice mutates the batch.
func (w Waveforms) Row(channel int) []float64 {
	if channel < 0 || channel >= w.channels {
		panic(fmt.Sprintf("waveforms: channel %d out of range (%d)", channel, w.channels))
	}
	return w.data[channel*w.samples : (channel+1)*w.samples]
}

// Data returns the backing slice. Shared, not copied.
func (w Waveforms) Data() []float64 { return w.data }

// Clone returns a batch with the same geometry and a fresh backing slice.
func (w Waveforms) Clone() Waveforms {
	out := Waveforms{
		data:     make([]float64, len(w.data)),
		channels: w.channels,
		samples:  w.samples,
	}
	copy(out.data, w.data)
	return out
}

// Metadata describes a waveform batch: its sampling rate, channel naming
// template, and component ordering, keyed by the SeisBench field names. Typed
// accessors surface ErrMissingField when a required key is absent or held with
// an unusable type, which is the record's only failure mode.
type Metadata map[string]interface{}

// SamplingRate returns the batch sampling rate in Hz.
func (m Metadata) SamplingRate() (float64, error) {
	v, ok := m[FieldSamplingRate]
	if !ok {
		return 0, fmt.Errorf("%w: metadata field %q", ErrMissingField, FieldSamplingRate)
	}
	switch rate := v.(type) {
	case float64:
		return rate, nil
	case float32:
		return float64(rate), nil
	case int:
		return float64(rate), nil
	}
	return 0, fmt.Errorf("%w: metadata field %q holds %T, want a number", ErrMissingField, FieldSamplingRate, v)
}

// ChannelTemplate returns the channel naming template, e.g. "HH*", where the
// wildcard position takes each component code in turn.
func (m Metadata) ChannelTemplate() (string, error) {
	v, ok := m[FieldChannel]
	if !ok {
		return "", fmt.Errorf("%w: metadata field %q", ErrMissingField, FieldChannel)
	}
	template, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: metadata field %q holds %T, want string", ErrMissingField, FieldChannel, v)
	}
	return template, nil
}

// ComponentOrder returns the ordered component codes, e.g. ["Z", "N", "E"].
// The field may hold either a []string or a compact string like "ZNE".
func (m Metadata) ComponentOrder() ([]string, error) {
	v, ok := m[FieldComponentOrder]
	if !ok {
		return nil, fmt.Errorf("%w: metadata field %q", ErrMissingField, FieldComponentOrder)
	}
	switch order := v.(type) {
	case []string:
		out := make([]string, len(order))
		copy(out, order)
		return out, nil
	case string:
		out := make([]string, 0, len(order))
		for _, code := range order {
			out = append(out, string(code))
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: metadata field %q holds %T, want []string or string", ErrMissingField, FieldComponentOrder, v)
}

// PhaseLabels maps arrival keys (e.g. "trace_p_arrival_sample") to labeled
// sample indexes, alongside the batch sampling rate under FieldSamplingRate.
type PhaseLabels map[string]float64

// SamplingRate returns the label record's sampling rate in Hz.
func (l PhaseLabels) SamplingRate() (float64, error) {
	rate, ok := l[FieldSamplingRate]
	if !ok {
		return 0, fmt.Errorf("%w: label field %q", ErrMissingField, FieldSamplingRate)
	}
	return rate, nil
}
