package spectral

import (
	"sync/atomic"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// hasLoggers returns true if any logger is attached (atomic, no locks, no alloc).
func (a *Analyzer) hasLoggers() bool {
	return atomic.LoadInt32(&a.loggerCount) != 0
}

// snapshotLoggers returns a stable snapshot of the logger slice.
// Never hold a.loggersLock while invoking logger methods.
func (a *Analyzer) snapshotLoggers() []types.Logger {
	if !a.hasLoggers() {
		return nil
	}

	a.loggersLock.Lock()
	defer a.loggersLock.Unlock()

	if len(a.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(a.loggers))
	copy(out, a.loggers)
	return out
}

// NotifyLoggers sends a log message to all registered loggers, checking per
// logger whether the level is enabled. Callers on hot paths gate calls with
// hasLoggers() so the variadic args are not built for nobody.
func (a *Analyzer) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := a.snapshotLoggers()
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
