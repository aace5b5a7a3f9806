package waveformplot

import (
	"fmt"
	"io"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
	"github.com/joeydtaylor/seislab/pkg/internal/utils"
)

const (
	// DefaultDPI matches the raster density used for saved notebook figures.
	DefaultDPI = 300

	// DefaultWidth and DefaultHeight give the canvas its default extent.
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// Figure stacks one or more axes vertically and renders them to a raster
// canvas. Row heights are relative weights, so a 2:1:1 stack gives the top
// panel half of the canvas.
type Figure struct {
	loggerHub
	componentMetadata types.ComponentMetadata

	rows    []*Axis
	heights []float64

	width  vg.Length
	height vg.Length
	dpi    int
}

// NewFigure creates an empty figure with the default canvas size and DPI.
func NewFigure(options ...types.Option[*Figure]) *Figure {
	f := &Figure{
		width:  DefaultWidth,
		height: DefaultHeight,
		dpi:    DefaultDPI,
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "WAVEFORM_FIGURE",
		},
	}
	for _, option := range options {
		option(f)
	}
	return f
}

// AddRow appends an axis as the next row down, with the given relative
// height weight. Non-positive weights count as one.
func (f *Figure) AddRow(ax *Axis, height float64) {
	if height <= 0 {
		height = 1
	}
	f.rows = append(f.rows, ax)
	f.heights = append(f.heights, height)
}

// Rows returns the axes in top-to-bottom order.
func (f *Figure) Rows() []*Axis {
	return f.rows
}

func (f *Figure) DPI() int {
	return f.dpi
}

func (f *Figure) SetDPI(dpi int) {
	if dpi > 0 {
		f.dpi = dpi
	}
}

func (f *Figure) SetSize(width, height vg.Length) {
	if width > 0 {
		f.width = width
	}
	if height > 0 {
		f.height = height
	}
}

func (f *Figure) GetComponentMetadata() types.ComponentMetadata {
	return f.componentMetadata
}

func (f *Figure) SetComponentMetadata(name string, id string) {
	f.componentMetadata.Name = name
	f.componentMetadata.ID = id
}

// WritePNG renders all rows onto a single canvas and writes the encoded
// PNG to w.
func (f *Figure) WritePNG(w io.Writer) error {
	if len(f.rows) == 0 {
		return fmt.Errorf("figure has no rows to render")
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(f.width, f.height),
		vgimg.UseDPI(f.dpi),
	)
	dc := draw.New(canvas)

	var total float64
	for _, h := range f.heights {
		total += h
	}

	// Tiles are cropped top to bottom in weight proportion.
	top := f.height
	for i, ax := range f.rows {
		rowHeight := vg.Length(f.heights[i]/total) * f.height
		bottom := top - rowHeight
		tile := draw.Crop(dc, 0, 0, bottom, top-f.height)
		ax.plot.Draw(tile)
		top = bottom
	}

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(w); err != nil {
		if f.hasLoggers() {
			f.NotifyLoggers(
				types.ErrorLevel,
				"png encode failed",
				"component", f.componentMetadata,
				"event", "WritePNG",
				"error", err,
			)
		}
		return fmt.Errorf("encode figure: %w", err)
	}

	if f.hasLoggers() {
		f.NotifyLoggers(
			types.DebugLevel,
			"figure rendered",
			"component", f.componentMetadata,
			"event", "WritePNG",
			"rows", len(f.rows),
			"dpi", f.dpi,
		)
	}
	return nil
}
