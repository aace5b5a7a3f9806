// utils_test.go

package utils_test

import (
	"testing"

	"github.com/joeydtaylor/seislab/pkg/internal/utils"
)

func TestGenerateUniqueHash(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		h := utils.GenerateUniqueHash()
		if len(h) != 64 {
			t.Fatalf("expected a 64-character hex digest, got %d characters", len(h))
		}
		if seen[h] {
			t.Fatalf("duplicate hash generated: %s", h)
		}
		seen[h] = true
	}
}

func TestGenerateSha256HashStable(t *testing.T) {
	a := utils.GenerateSha256Hash("seismogram")
	b := utils.GenerateSha256Hash("seismogram")
	if a != b {
		t.Errorf("expected identical digests for identical input, got %s and %s", a, b)
	}

	c := utils.GenerateSha256Hash("seismograph")
	if a == c {
		t.Error("expected different digests for different input")
	}
}
