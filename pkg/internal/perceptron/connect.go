package perceptron

import (
	"math/rand"
	"sync/atomic"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// ConnectLogger registers loggers for perceptron events.
func (p *MultiLayerPerceptron) ConnectLogger(loggers ...types.Logger) {
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

	p.loggersLock.Lock()
	p.loggers = append(p.loggers, loggers...)
	p.loggersLock.Unlock()
	atomic.AddInt32(&p.loggerCount, int32(n))
}

// SetRandomSource replaces the source used for parameter initialization.
// Effective only from an option, before New allocates the parameters.
func (p *MultiLayerPerceptron) SetRandomSource(src rand.Source) {
	if src == nil {
		return
	}
	p.rng = rand.New(src)
}
