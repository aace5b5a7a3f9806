package seismogram_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/joeydtaylor/seislab/pkg/internal/seismogram"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

func TestNormalizeScalesToPeak(t *testing.T) {
	w, err := types.WaveformsFromRows([][]float64{
		{1, -4, 2},
		{0.5, 0, -1},
	})
	if err != nil {
		t.Fatalf("building batch: %v", err)
	}

	out := seismogram.Normalize(w, 0.8)

	// Global peak |amplitude| is 4, so -4 must land at -0.8.
	if got := out.At(0, 1); math.Abs(got-(-0.8)) > 1e-12 {
		t.Errorf("expected peak sample -0.8, got %v", got)
	}
	if got := out.At(1, 0); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("expected 0.5/4*0.8 = 0.1, got %v", got)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	w, _ := types.WaveformsFromRows([][]float64{{3, -6, 9}})
	before := make([]float64, len(w.Data()))
	copy(before, w.Data())

	_ = seismogram.Normalize(w, 0.8)

	if !reflect.DeepEqual(before, w.Data()) {
		t.Error("normalization mutated the caller's batch")
	}
}

func TestNormalizeSilentBatch(t *testing.T) {
	w, _ := types.NewWaveforms(2, 10)
	out := seismogram.Normalize(w, 0.8)
	for _, v := range out.Data() {
		if v != 0 {
			t.Fatalf("expected silent batch to stay zero, got %v", v)
		}
	}
}

func TestTimeAxis(t *testing.T) {
	times := seismogram.TimeAxis(5, 100)
	expected := []float64{0, 0.01, 0.02, 0.03, 0.04}
	for i, v := range expected {
		if math.Abs(times[i]-v) > 1e-12 {
			t.Errorf("sample %d: expected %v seconds, got %v", i, v, times[i])
		}
	}
}

func TestChannelNames(t *testing.T) {
	meta := types.Metadata{
		types.FieldChannel:        "HH*",
		types.FieldComponentOrder: []string{"Z", "N", "E"},
	}

	names, err := seismogram.ChannelNames(meta)
	if err != nil {
		t.Fatalf("channel names: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"HHZ", "HHN", "HHE"}) {
		t.Errorf("expected [HHZ HHN HHE], got %v", names)
	}
}

func TestChannelNamesCompactOrder(t *testing.T) {
	meta := types.Metadata{
		types.FieldChannel:        "BH*",
		types.FieldComponentOrder: "ZNE",
	}

	names, err := seismogram.ChannelNames(meta)
	if err != nil {
		t.Fatalf("channel names: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"BHZ", "BHN", "BHE"}) {
		t.Errorf("expected [BHZ BHN BHE], got %v", names)
	}
}

func TestChannelNamesMissingField(t *testing.T) {
	meta := types.Metadata{types.FieldChannel: "HH*"}

	_, err := seismogram.ChannelNames(meta)
	if !errors.Is(err, types.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestApply(t *testing.T) {
	w, _ := types.WaveformsFromRows([][]float64{{1, 2}, {3, 4}})

	doubled, err := seismogram.Apply(w, func(row []float64) ([]float64, error) {
		for i := range row {
			row[i] *= 2
		}
		return row, nil
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if doubled.At(1, 1) != 8 {
		t.Errorf("expected 8, got %v", doubled.At(1, 1))
	}
	if w.At(1, 1) != 4 {
		t.Error("apply mutated the caller's batch")
	}
}

func TestApplyLengthChange(t *testing.T) {
	w, _ := types.WaveformsFromRows([][]float64{{1, 2, 3}})

	_, err := seismogram.Apply(w, func(row []float64) ([]float64, error) {
		return row[:1], nil
	})
	if !errors.Is(err, types.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}
