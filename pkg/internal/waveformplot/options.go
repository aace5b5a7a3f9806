package waveformplot

import (
	"gonum.org/v1/plot/vg"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// WithLogger attaches loggers to an axis.
func WithLogger(l ...types.Logger) types.Option[*Axis] {
	return func(a *Axis) {
		a.ConnectLogger(l...)
	}
}

// WithComponentMetadata overrides the axis name and id.
func WithComponentMetadata(name string, id string) types.Option[*Axis] {
	return func(a *Axis) {
		a.SetComponentMetadata(name, id)
	}
}

// FigureWithLogger attaches loggers to a figure.
func FigureWithLogger(l ...types.Logger) types.Option[*Figure] {
	return func(f *Figure) {
		f.ConnectLogger(l...)
	}
}

// FigureWithComponentMetadata overrides the figure name and id.
func FigureWithComponentMetadata(name string, id string) types.Option[*Figure] {
	return func(f *Figure) {
		f.SetComponentMetadata(name, id)
	}
}

// FigureWithDPI overrides the raster density used when rendering.
func FigureWithDPI(dpi int) types.Option[*Figure] {
	return func(f *Figure) {
		f.SetDPI(dpi)
	}
}

// FigureWithSize overrides the canvas extent.
func FigureWithSize(width, height vg.Length) types.Option[*Figure] {
	return func(f *Figure) {
		f.SetSize(width, height)
	}
}
