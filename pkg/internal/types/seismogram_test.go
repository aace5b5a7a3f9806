package types_test

import (
	"errors"
	"testing"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

func TestWaveformsFromRowsRaggedRows(t *testing.T) {
	_, err := types.WaveformsFromRows([][]float64{{1, 2, 3}, {4, 5}})
	if !errors.Is(err, types.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestWaveformsFromRowsCopies(t *testing.T) {
	row := []float64{1, 2, 3}
	w, err := types.WaveformsFromRows([][]float64{row})
	if err != nil {
		t.Fatalf("WaveformsFromRows: %v", err)
	}
	row[0] = 99
	if got := w.At(0, 0); got != 1 {
		t.Fatalf("batch aliases the caller's slice: got %v", got)
	}
}

func TestMetadataSamplingRateTypes(t *testing.T) {
	for _, v := range []interface{}{100.0, float32(100), 100} {
		meta := types.Metadata{types.FieldSamplingRate: v}
		rate, err := meta.SamplingRate()
		if err != nil {
			t.Fatalf("SamplingRate(%T): %v", v, err)
		}
		if rate != 100 {
			t.Fatalf("SamplingRate(%T) = %v, want 100", v, rate)
		}
	}
}

func TestMetadataMissingFields(t *testing.T) {
	meta := types.Metadata{}
	if _, err := meta.SamplingRate(); !errors.Is(err, types.ErrMissingField) {
		t.Fatalf("SamplingRate on empty metadata: %v", err)
	}
	if _, err := meta.ChannelTemplate(); !errors.Is(err, types.ErrMissingField) {
		t.Fatalf("ChannelTemplate on empty metadata: %v", err)
	}
	if _, err := meta.ComponentOrder(); !errors.Is(err, types.ErrMissingField) {
		t.Fatalf("ComponentOrder on empty metadata: %v", err)
	}
}

func TestMetadataMistypedField(t *testing.T) {
	meta := types.Metadata{types.FieldSamplingRate: "fast"}
	if _, err := meta.SamplingRate(); !errors.Is(err, types.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for a mistyped rate, got %v", err)
	}
}

func TestPhaseLabelsSamplingRate(t *testing.T) {
	labels := types.PhaseLabels{types.FieldSamplingRate: 50.0}
	rate, err := labels.SamplingRate()
	if err != nil {
		t.Fatalf("SamplingRate: %v", err)
	}
	if rate != 50 {
		t.Fatalf("rate = %v, want 50", rate)
	}

	if _, err := (types.PhaseLabels{}).SamplingRate(); !errors.Is(err, types.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}
