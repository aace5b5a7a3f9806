package spectral

import (
	"sync/atomic"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// ConnectLogger registers loggers for analyzer events.
func (a *Analyzer) ConnectLogger(loggers ...types.Logger) {
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

	a.loggersLock.Lock()
	a.loggers = append(a.loggers, loggers...)
	a.loggersLock.Unlock()
	atomic.AddInt32(&a.loggerCount, int32(n))
}
