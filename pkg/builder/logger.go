package builder

import (
	internalLogger "github.com/joeydtaylor/seislab/pkg/internal/internallogger"
	"github.com/joeydtaylor/seislab/pkg/internal/types"
	"github.com/joeydtaylor/seislab/pkg/logschema"
)

type LoggerOption = internalLogger.LoggerOption

type SinkConfig = types.SinkConfig

type SinkType = types.SinkType

const (
	FileSink   SinkType = "file"
	StdoutSink SinkType = "stdout"
)

// EnvLogLevel names the environment variable that sets the default logger
// level. An unset or empty value falls back to "info".
const EnvLogLevel = "SEISLAB_LOG_LEVEL"

// NewLogger builds a structured logger. The level defaults to the
// EnvLogLevel environment variable so notebooks can raise verbosity without
// code changes; explicit options win.
func NewLogger(options ...internalLogger.LoggerOption) types.Logger {
	opts := append(
		[]internalLogger.LoggerOption{
			internalLogger.LoggerWithLevel(EnvOr(EnvLogLevel, "info")),
		},
		options...,
	)
	return internalLogger.NewLogger(opts...)
}

// LoggerWithLevel configures the logger to use the specified log level
func LoggerWithLevel(levelStr string) LoggerOption {
	return internalLogger.LoggerWithLevel(levelStr)
}

// LoggerWithDevelopment enables or disables development mode
func LoggerWithDevelopment(dev bool) LoggerOption {
	return internalLogger.LoggerWithDevelopment(dev)
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return internalLogger.LoggerWithFields(fields)
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return internalLogger.LoggerWithSchema(schema)
}

// Log schema constants for the standard log format.
const (
	LogSchemaID    = logschema.SchemaID
	LogSchemaField = logschema.FieldSchema
)

// LogLevel is exported from the internal types package.
type LogLevel = types.LogLevel

// Export log levels to be accessible under the builder package
const (
	DebugLevel  = types.DebugLevel
	InfoLevel   = types.InfoLevel
	WarnLevel   = types.WarnLevel
	ErrorLevel  = types.ErrorLevel
	DPanicLevel = types.DPanicLevel
	PanicLevel  = types.PanicLevel
	FatalLevel  = types.FatalLevel
)
