package logging

import (
	"bytes"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity of the message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// timeLayout matches the stamp the operator sees on every line.
const timeLayout = "2006/01/02 15:04:05"

// NewMockLogger returns a convenient mock logger for testing
func NewMockLogger() *DefaultLogger {
	return newLogger(bytes.NewBufferString(""), INFO)
}

// Logger interface defines logging operations
//
//go:generate mockery --name=Logger --output=./mocks
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	SetOutput(w io.Writer)
	SetLevel(level LogLevel)
}

// DefaultLogger is a Logger backed by a zap console core.
type DefaultLogger struct {
	writer io.Writer
	level  LogLevel
	sugar  *zap.SugaredLogger
}

// NewDefaultLogger creates a new logger instance writing to stderr, so that
// report output on stdout stays clean.
func NewDefaultLogger() *DefaultLogger {
	return newLogger(os.Stderr, INFO)
}

func newLogger(w io.Writer, level LogLevel) *DefaultLogger {
	l := &DefaultLogger{
		writer: w,
		level:  level,
	}
	l.build()
	return l
}

// build (re)creates the zap core from the current writer and level.
func (l *DefaultLogger) build() {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.CallerKey = ""
	encoderConfig.NameKey = ""
	encoderConfig.StacktraceKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(l.writer),
		toZapLevel(l.level),
	)
	l.sugar = zap.New(core).Sugar()
}

// Debug logs debug messages
func (l *DefaultLogger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs informational messages
func (l *DefaultLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn logs warning messages
func (l *DefaultLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs error messages
func (l *DefaultLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// SetOutput sets the output destination for the logger
func (l *DefaultLogger) SetOutput(w io.Writer) {
	l.writer = w
	l.build()
}

// SetLevel sets the logging level
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.level = level
	l.build()
}

func toZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// StringToLogLevel converts a string representation to a LogLevel
func StringToLogLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
