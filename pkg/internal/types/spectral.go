package types

// SpectralSummary holds the frequency-domain profile of one trace.
type SpectralSummary struct {
	Channel           string  // Channel name, when analyzed from a batch with metadata.
	DominantFrequency float64 // Frequency of the strongest spectral bin, in Hz.
	TotalEnergy       float64 // Time-domain energy of the trace.
	SNR               float64 // Signal-to-noise ratio in dB, dominant bin vs the rest.
	PowerSpectrum     []float64
	FrequencyPeaks    []Peak // Strongest local maxima of the power spectrum, descending.
}

// Peak is one local maximum of a power spectrum.
type Peak struct {
	Freq  float64
	Value float64
}

// SpectralAnalyzer computes frequency-domain summaries of seismogram traces,
// intended for notebook-side data inspection before and after classification.
type SpectralAnalyzer interface {
	// Analyze summarizes a single trace. Fails on an empty trace or a
	// non-positive sampling rate.
	Analyze(samples []float64, samplingRate float64) (SpectralSummary, error)

	// AnalyzeBatch summarizes each channel of a batch, naming channels from
	// the metadata's channel template and component order.
	AnalyzeBatch(w Waveforms, meta Metadata) ([]SpectralSummary, error)

	// SetMaxPeaks caps how many spectral peaks each summary reports.
	SetMaxPeaks(n int)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
