package convnet

import (
	"sync/atomic"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// hasLoggers returns true if any logger is attached (atomic, no locks, no alloc).
func (c *ConvolutionalNeuralNetwork) hasLoggers() bool {
	return atomic.LoadInt32(&c.loggerCount) != 0
}

// snapshotLoggers returns a stable snapshot of the logger slice.
// Never hold c.loggersLock while invoking logger methods.
func (c *ConvolutionalNeuralNetwork) snapshotLoggers() []types.Logger {
	if !c.hasLoggers() {
		return nil
	}

	c.loggersLock.Lock()
	defer c.loggersLock.Unlock()

	if len(c.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(c.loggers))
	copy(out, c.loggers)
	return out
}

// NotifyLoggers sends a log message to all registered loggers, checking per
// logger whether the level is enabled. Callers on hot paths gate calls with
// hasLoggers() so the variadic args are not built for nobody.
func (c *ConvolutionalNeuralNetwork) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := c.snapshotLoggers()
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
