package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger provides structured logging with a component tag
type Logger interface {
	Debug(component string, message string, fields map[string]interface{})
	Info(component string, message string, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// New returns the application logger. The level is fixed at build time:
// builds with the debug tag log at debug level, all others at info.
func New() *ZerologAdapter {
	return NewConsoleLogger(os.Stderr, BuildLevel())
}

// NewConsoleLogger writes human readable output to w
func NewConsoleLogger(w io.Writer, level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return NewZerolog(consoleWriter, level)
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (n NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
func (n NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
