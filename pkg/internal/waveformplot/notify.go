package waveformplot

import (
	"sync"
	"sync/atomic"

	"github.com/joeydtaylor/seislab/pkg/internal/types"
)

// loggerHub carries the logger fan-out shared by the plotting components.
type loggerHub struct {
	loggers     []types.Logger
	loggersLock sync.Mutex
	loggerCount int32
}

// ConnectLogger attaches one or more loggers to the component.
func (h *loggerHub) ConnectLogger(l ...types.Logger) {
	h.loggersLock.Lock()
	defer h.loggersLock.Unlock()
	for _, logger := range l {
		if logger == nil {
			continue
		}
		h.loggers = append(h.loggers, logger)
	}
	atomic.StoreInt32(&h.loggerCount, int32(len(h.loggers)))
}

func (h *loggerHub) hasLoggers() bool {
	return atomic.LoadInt32(&h.loggerCount) > 0
}

func (h *loggerHub) snapshotLoggers() []types.Logger {
	h.loggersLock.Lock()
	defer h.loggersLock.Unlock()
	out := make([]types.Logger, len(h.loggers))
	copy(out, h.loggers)
	return out
}

type levelChecker interface {
	IsLevelEnabled(level types.LogLevel) bool
}

// NotifyLoggers fans a structured event out to every attached logger that
// has the level enabled.
func (h *loggerHub) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	if !h.hasLoggers() {
		return
	}
	for _, logger := range h.snapshotLoggers() {
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
