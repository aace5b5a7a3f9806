package waveformplot

import (
	"io"

	"gonum.org/v1/plot"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
	"github.com/joeydtaylor/seislab/pkg/internal/utils"
)

// Axis wraps a single plot panel. Plotting operations accept a nil *Axis
// and allocate a fresh one, so callers only construct an Axis explicitly
// when they want to layer several operations onto the same panel.
type Axis struct {
	loggerHub
	componentMetadata types.ComponentMetadata

	plot *plot.Plot

	// Data extent drawn so far; pick markers span this range vertically.
	yMin, yMax float64
	xMax       float64
	hasData    bool

	legendLabels []string
}

// NewAxis creates an empty plot panel.
func NewAxis(options ...types.Option[*Axis]) *Axis {
	a := &Axis{
		plot: plot.New(),
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "WAVEFORM_AXIS",
		},
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Plot exposes the underlying panel for callers that need direct styling.
func (a *Axis) Plot() *plot.Plot {
	return a.plot
}

// LegendLabels returns the legend entry texts in the order they were added.
func (a *Axis) LegendLabels() []string {
	out := make([]string, len(a.legendLabels))
	copy(out, a.legendLabels)
	return out
}

// addLegend records a legend entry alongside the underlying plot's legend.
func (a *Axis) addLegend(text string, thumb plot.Thumbnailer) {
	a.plot.Legend.Add(text, thumb)
	a.legendLabels = append(a.legendLabels, text)
}

func (a *Axis) GetComponentMetadata() types.ComponentMetadata {
	return a.componentMetadata
}

func (a *Axis) SetComponentMetadata(name string, id string) {
	a.componentMetadata.Name = name
	a.componentMetadata.ID = id
}

// recordExtent widens the tracked data range to cover a newly drawn series.
func (a *Axis) recordExtent(xMax, yMin, yMax float64) {
	if !a.hasData {
		a.xMax, a.yMin, a.yMax = xMax, yMin, yMax
		a.hasData = true
		return
	}
	if xMax > a.xMax {
		a.xMax = xMax
	}
	if yMin < a.yMin {
		a.yMin = yMin
	}
	if yMax > a.yMax {
		a.yMax = yMax
	}
}

// markerSpan is the vertical range a pick marker covers. An axis with no
// data yet spans the unit interval.
func (a *Axis) markerSpan() (float64, float64) {
	if !a.hasData {
		return 0, 1
	}
	return a.yMin, a.yMax
}

// WritePNG renders the panel on its own as a single-row figure.
func (a *Axis) WritePNG(w io.Writer) error {
	fig := NewFigure()
	fig.AddRow(a, 1)
	return fig.WritePNG(w)
}
