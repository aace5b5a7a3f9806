package builder

import (
	"math/rand"
	"os"
	"testing"
)

func TestNewLoggerLevelFromEnv(t *testing.T) {
	if err := os.Setenv(EnvLogLevel, "debug"); err != nil {
		t.Fatalf("setenv failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(EnvLogLevel) })

	logger := NewLogger()
	checker, ok := logger.(interface{ IsLevelEnabled(LogLevel) bool })
	if !ok {
		t.Fatal("logger does not expose level checks")
	}
	if !checker.IsLevelEnabled(DebugLevel) {
		t.Fatal("expected debug level from environment")
	}
}

func TestNewLoggerExplicitLevelWins(t *testing.T) {
	if err := os.Setenv(EnvLogLevel, "debug"); err != nil {
		t.Fatalf("setenv failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(EnvLogLevel) })

	logger := NewLogger(LoggerWithLevel("error"))
	checker, ok := logger.(interface{ IsLevelEnabled(LogLevel) bool })
	if !ok {
		t.Fatal("logger does not expose level checks")
	}
	if checker.IsLevelEnabled(InfoLevel) {
		t.Fatal("explicit level option should override the environment")
	}
}

func TestNewFigureDPIFromEnv(t *testing.T) {
	if err := os.Setenv(EnvPlotDPI, "72"); err != nil {
		t.Fatalf("setenv failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(EnvPlotDPI) })

	if got := NewFigure().DPI(); got != 72 {
		t.Fatalf("figure DPI = %d, want 72", got)
	}
	if got := NewFigure(FigureWithDPI(96)).DPI(); got != 96 {
		t.Fatalf("explicit DPI = %d, want 96", got)
	}
}

func TestFacadeConstructors(t *testing.T) {
	mlp, err := NewMultiLayerPerceptron(400, 32, 3, MultiLayerPerceptronWithRandomSource(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewMultiLayerPerceptron: %v", err)
	}
	if mlp.InputSize() != 400 || mlp.HiddenSize() != 32 || mlp.Classes() != 3 {
		t.Fatal("perceptron sizes not applied")
	}

	net := NewConvolutionalNeuralNetwork(
		ConvolutionalNeuralNetworkWithHiddenSize(8),
		ConvolutionalNeuralNetworkWithRandomSource(rand.NewSource(1)),
	)
	if net.HiddenSize() != 8 {
		t.Fatal("network hidden size not applied")
	}

	analyzer := NewSpectralAnalyzer()
	if analyzer.GetComponentMetadata().Type != "SPECTRAL_ANALYZER" {
		t.Fatal("analyzer metadata type not set")
	}
}
