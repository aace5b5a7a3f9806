package builder

import (
	"gonum.org/v1/plot/vg"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
	"github.com/joeydtaylor/seislab/pkg/internal/waveformplot"
)

// Axis is a single plot panel; Figure is a vertical stack of panels that
// renders to PNG.
type (
	Axis   = waveformplot.Axis
	Figure = waveformplot.Figure
)

// Phases is the default mapping from SeisBench arrival keys to phase names.
var Phases = waveformplot.Phases

// EnvPlotDPI names the environment variable that sets the default raster
// density of new figures. An unset or empty value falls back to 300.
const EnvPlotDPI = "SEISLAB_PLOT_DPI"

// NewAxis creates an empty plot panel.
func NewAxis(options ...types.Option[*Axis]) *Axis {
	return waveformplot.NewAxis(options...)
}

// NewFigure creates an empty figure. The DPI defaults to the EnvPlotDPI
// environment variable; explicit options win.
func NewFigure(options ...types.Option[*Figure]) *Figure {
	opts := append(
		[]types.Option[*Figure]{
			waveformplot.FigureWithDPI(EnvIntOr(EnvPlotDPI, waveformplot.DefaultDPI)),
		},
		options...,
	)
	return waveformplot.NewFigure(opts...)
}

// AxisWithLogger attaches loggers to an axis.
func AxisWithLogger(logger ...types.Logger) types.Option[*Axis] {
	return waveformplot.WithLogger(logger...)
}

// FigureWithLogger attaches loggers to a figure.
func FigureWithLogger(logger ...types.Logger) types.Option[*Figure] {
	return waveformplot.FigureWithLogger(logger...)
}

// FigureWithDPI overrides the raster density used when rendering.
func FigureWithDPI(dpi int) types.Option[*Figure] {
	return waveformplot.FigureWithDPI(dpi)
}

// FigureWithSize overrides the canvas extent.
func FigureWithSize(width, height vg.Length) types.Option[*Figure] {
	return waveformplot.FigureWithSize(width, height)
}

// PlotWaveforms draws each channel of a batch as a normalized, vertically
// offset trace. A nil axis allocates a fresh one.
func PlotWaveforms(w Waveforms, meta Metadata, ax *Axis) (*Axis, error) {
	return waveformplot.PlotWaveforms(w, meta, ax)
}

// AddPicks draws a vertical marker per labeled phase arrival. A nil phases
// map uses the default Phases table.
func AddPicks(labels PhaseLabels, phases map[string]string, ax *Axis) (*Axis, error) {
	return waveformplot.AddPicks(labels, phases, ax)
}

// PlotWaveformsAndLabels stacks normalized waveforms over ground-truth and
// predicted class probability curves in a 2:1:1 three-row figure.
func PlotWaveformsAndLabels(w Waveforms, meta Metadata, labelsTrue, labelsPred [][]float64) (*Figure, error) {
	fig, err := waveformplot.PlotWaveformsAndLabels(w, meta, labelsTrue, labelsPred)
	if err != nil {
		return nil, err
	}
	fig.SetDPI(EnvIntOr(EnvPlotDPI, waveformplot.DefaultDPI))
	return fig, nil
}
