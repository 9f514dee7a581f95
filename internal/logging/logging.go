// Package logging builds the zap logger used by the costar CLI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console-encoded logger at level ("debug", "info", "warn",
// "error"; empty means info). With a non-empty logFile the output is
// appended to that file, otherwise it goes to stderr so that command output
// on stdout stays clean.
func New(level, logFile string) (*zap.Logger, error) {
	if logFile == "" {
		return NewWithSink(level, zapcore.Lock(os.Stderr))
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	return NewWithSink(level, zapcore.AddSync(file))
}

// NewWithSink is New with an explicit destination.
func NewWithSink(level string, sink zapcore.WriteSyncer) (*zap.Logger, error) {
	zapLevel := zapcore.InfoLevel
	if level != "" {
		var err error
		if zapLevel, err = zapcore.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.ConsoleSeparator = " | "

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, zapLevel)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
