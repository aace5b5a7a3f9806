package waveformplot

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/joeydtaylor/seislab/pkg/internal/seismogram"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// labelRowNames names the probability curves in a labeled figure, one per
// class row: P arrivals, S arrivals, noise.
var labelRowNames = []string{"P", "S", "N"}

// legendTitle is a blank legend entry used as a heading above the pick
// markers.
type legendTitle struct{}

func (legendTitle) Thumbnail(*draw.Canvas) {}

// PlotWaveforms draws each channel of a waveform batch as a black trace,
// normalized to the global peak and offset vertically by its channel index.
// A nil axis allocates a fresh one. The axis is returned for chaining.
func PlotWaveforms(w types.Waveforms, meta types.Metadata, ax *Axis) (*Axis, error) {
	if ax == nil {
		ax = NewAxis()
	}

	rate, err := meta.SamplingRate()
	if err != nil {
		return ax, err
	}
	names, err := seismogram.ChannelNames(meta)
	if err != nil {
		return ax, err
	}

	norm := seismogram.Normalize(w, seismogram.DefaultAmplitudeScale)
	times := seismogram.TimeAxis(w.Samples(), rate)

	for i := 0; i < norm.Channels(); i++ {
		offset := float64(i)
		pts := make(plotter.XYs, norm.Samples())
		for j := 0; j < norm.Samples(); j++ {
			pts[j].X = times[j]
			pts[j].Y = norm.At(i, j) + offset
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return ax, fmt.Errorf("channel %d trace: %w", i, err)
		}
		line.Color = color.Black
		line.Width = vg.Points(0.5)
		ax.plot.Add(line)
	}

	ax.plot.Add(plotter.NewGrid())

	ticks := make([]plot.Tick, 0, len(names))
	for i, name := range names {
		if i >= norm.Channels() {
			break
		}
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: name})
	}
	ax.plot.Y.Tick.Marker = plot.ConstantTicks(ticks)
	ax.plot.Y.Label.Text = "Normalized seismograms"
	ax.plot.X.Label.Text = "Time (seconds)"

	xMax := 0.0
	if len(times) > 0 {
		xMax = times[len(times)-1]
	}
	ax.recordExtent(
		xMax,
		-seismogram.DefaultAmplitudeScale,
		float64(norm.Channels()-1)+seismogram.DefaultAmplitudeScale,
	)

	if ax.hasLoggers() {
		ax.NotifyLoggers(
			types.DebugLevel,
			"waveforms plotted",
			"component", ax.componentMetadata,
			"event", "PlotWaveforms",
			"channels", norm.Channels(),
			"samples", norm.Samples(),
			"samplingRate", rate,
		)
	}
	return ax, nil
}

// AddPicks draws a vertical marker for every labeled phase arrival, colored
// by phase name and gathered under a "Picked arrival" legend. A nil phases
// map uses the default Phases table; a phase name without a configured
// color fails with ErrUnmappedPhase.
func AddPicks(labels types.PhaseLabels, phases map[string]string, ax *Axis) (*Axis, error) {
	if ax == nil {
		ax = NewAxis()
	}
	if phases == nil {
		phases = Phases
	}

	rate, err := labels.SamplingRate()
	if err != nil {
		return ax, err
	}

	keys := make([]string, 0, len(phases))
	for key := range phases {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	yMin, yMax := ax.markerSpan()
	picked := 0
	for _, key := range keys {
		sample, ok := labels[key]
		if !ok {
			continue
		}
		name := phases[key]
		markerColor, ok := Colors[name]
		if !ok {
			return ax, fmt.Errorf("%w: phase %q has no configured color", types.ErrUnmappedPhase, name)
		}

		if picked == 0 {
			ax.addLegend("Picked arrival", legendTitle{})
		}

		t := sample / rate
		marker, err := plotter.NewLine(plotter.XYs{{X: t, Y: yMin}, {X: t, Y: yMax}})
		if err != nil {
			return ax, fmt.Errorf("pick marker %q: %w", key, err)
		}
		marker.Color = markerColor
		ax.plot.Add(marker)
		ax.addLegend(name, marker)
		picked++
	}

	ax.plot.Legend.Top = true
	ax.plot.Legend.Left = false

	if ax.hasLoggers() {
		ax.NotifyLoggers(
			types.DebugLevel,
			"picks added",
			"component", ax.componentMetadata,
			"event", "AddPicks",
			"picks", picked,
		)
	}
	return ax, nil
}

// PlotWaveformsAndLabels stacks three sharing-axis rows: normalized
// waveforms on top at double height, then the ground-truth class
// probability curves, then the predicted ones. Both curve sets are expected
// to hold three length-matched rows in P, S, noise order; extras beyond the
// named classes are dropped.
func PlotWaveformsAndLabels(w types.Waveforms, meta types.Metadata, labelsTrue, labelsPred [][]float64) (*Figure, error) {
	rate, err := meta.SamplingRate()
	if err != nil {
		return nil, err
	}

	top, err := PlotWaveforms(w, meta, nil)
	if err != nil {
		return nil, err
	}
	top.plot.X.Label.Text = ""

	times := seismogram.TimeAxis(w.Samples(), rate)

	// The class legend lives on the ground-truth row only.
	truth := NewAxis()
	if err := plotLabelCurves(truth, times, labelsTrue, true); err != nil {
		return nil, fmt.Errorf("ground-truth curves: %w", err)
	}
	truth.plot.Legend.Top = true
	truth.plot.Legend.Left = false

	pred := NewAxis()
	if err := plotLabelCurves(pred, times, labelsPred, false); err != nil {
		return nil, fmt.Errorf("predicted curves: %w", err)
	}
	pred.plot.X.Label.Text = "Time (seconds)"

	// Shared time axis across all rows.
	xMax := 0.0
	if len(times) > 0 {
		xMax = times[len(times)-1]
	}
	for _, a := range []*Axis{top, truth, pred} {
		a.plot.X.Min = 0
		a.plot.X.Max = xMax
	}

	fig := NewFigure()
	fig.AddRow(top, 2)
	fig.AddRow(truth, 1)
	fig.AddRow(pred, 1)
	return fig, nil
}

// plotLabelCurves draws one palette-colored line per class curve,
// optionally legended with the class name.
func plotLabelCurves(ax *Axis, times []float64, curves [][]float64, legend bool) error {
	for i, curve := range curves {
		if i >= len(labelRowNames) {
			break
		}
		n := len(curve)
		if n > len(times) {
			n = len(times)
		}
		pts := make(plotter.XYs, n)
		for j := 0; j < n; j++ {
			pts[j].X = times[j]
			pts[j].Y = curve[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("class %s: %w", labelRowNames[i], err)
		}
		line.Color = plotutil.Color(i)
		ax.plot.Add(line)
		if legend {
			ax.addLegend(labelRowNames[i], line)
		}

		var xd, yLo, yHi float64
		if n > 0 {
			xd = times[n-1]
			yLo, yHi = curve[0], curve[0]
			for _, v := range curve[:n] {
				if v < yLo {
					yLo = v
				}
				if v > yHi {
					yHi = v
				}
			}
		}
		ax.recordExtent(xd, yLo, yHi)
	}
	ax.plot.Add(plotter.NewGrid())
	return nil
}
