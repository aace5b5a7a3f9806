package convnet

import (
	"math/rand"
	"sync/atomic"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// ConnectLogger registers loggers for convnet events.
func (c *ConvolutionalNeuralNetwork) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}

	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}
	loggers = loggers[:n]

	c.loggersLock.Lock()
	c.loggers = append(c.loggers, loggers...)
	c.loggersLock.Unlock()
	atomic.AddInt32(&c.loggerCount, int32(n))
}

// SetInputSize records the informational input size.
func (c *ConvolutionalNeuralNetwork) SetInputSize(n int) {
	if n > 0 {
		c.inputSize = n
	}
}

// SetHiddenSize sets the first stage's channel width.
func (c *ConvolutionalNeuralNetwork) SetHiddenSize(n int) {
	if n > 0 {
		c.hiddenSize = n
	}
}

// SetClasses sets the output class count.
func (c *ConvolutionalNeuralNetwork) SetClasses(n int) {
	if n > 0 {
		c.nClasses = n
	}
}

// SetKernel sets the convolution kernel size, stride, and padding.
func (c *ConvolutionalNeuralNetwork) SetKernel(size, stride, padding int) {
	if size > 0 {
		c.kernelSize = size
	}
	if stride > 0 {
		c.stride = stride
	}
	if padding >= 0 {
		c.padding = padding
	}
}

// SetRandomSource replaces the source used for parameter initialization.
// Effective only from an option, before New allocates the parameters.
func (c *ConvolutionalNeuralNetwork) SetRandomSource(src rand.Source) {
	if src == nil {
		return
	}
	c.rng = rand.New(src)
}
