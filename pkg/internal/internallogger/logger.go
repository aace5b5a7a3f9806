// Package internallogger adapts go.uber.org/zap to the types.Logger interface
// every component logs through. The base core writes JSON to stdout; extra
// sinks (files, additional stdout cores) can be attached and detached at
// runtime by identifier.
package internallogger

import (
	"os"
	"sync"

	"github.com/joeydtaylor/seislab/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap config, the initial level, and the caller skip
// depth before the adapter is assembled.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of a zap core.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerDepth int
	callerOn    bool
	development bool
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 3 // Default caller depth

	for _, option := range options {
		if option == nil {
			continue
		}
		option(&config, &level, &callerDepth)
	}

	if config.InitialFields == nil {
		config.InitialFields = map[string]interface{}{}
	}
	if _, ok := config.InitialFields[logschema.FieldSchema]; !ok {
		config.InitialFields[logschema.FieldSchema] = logschema.SchemaID
	}

	encConfig := standardEncoderConfig()
	atomicLevel := zap.NewAtomicLevelAt(level)

	var encoder zapcore.Encoder
	if config.Development {
		encoder = zapcore.NewConsoleEncoder(encConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encConfig)
	}
	baseCore := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atomicLevel)

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		encConfig:   encConfig,
		baseCore:    baseCore,
		baseFields:  fieldsFromMap(config.InitialFields),
		callerDepth: callerDepth,
		callerOn:    true,
		development: config.Development,
		sinks:       make(map[string]sinkEntry),
	}
	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()
	return z
}
