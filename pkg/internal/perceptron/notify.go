package perceptron

import (
	"sync/atomic"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// hasLoggers returns true if any logger is attached (atomic, no locks, no alloc).
func (p *MultiLayerPerceptron) hasLoggers() bool {
	return atomic.LoadInt32(&p.loggerCount) != 0
}

// snapshotLoggers returns a stable snapshot of the logger slice.
// Never hold p.loggersLock while invoking logger methods.
func (p *MultiLayerPerceptron) snapshotLoggers() []types.Logger {
	if !p.hasLoggers() {
		return nil
	}

	p.loggersLock.Lock()
	defer p.loggersLock.Unlock()

	if len(p.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(p.loggers))
	copy(out, p.loggers)
	return out
}

// NotifyLoggers sends a log message to all registered loggers, checking per
// logger whether the level is enabled. Callers on hot paths gate calls with
// hasLoggers() so the variadic args are not built for nobody.
func (p *MultiLayerPerceptron) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := p.snapshotLoggers()
	if len(loggers) == 0 {
		return
	}

	type levelChecker interface {
		IsLevelEnabled(types.LogLevel) bool
	}

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		if lc, ok := logger.(levelChecker); ok && !lc.IsLevelEnabled(level) {
			continue
		}

		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
