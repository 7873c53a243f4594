// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package logger implements a package-level structured logger
// used by redrank commands.
//
// Before Init is called,
// the logger discards all records.
package logger

import (
	"flag"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLog = zap.NewNop()

// Level returns the logging level
// set by the command line switches.
// Debug has precedence over quiet.
func Level(debug, quiet bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	if quiet {
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// Init sets the logger to write records
// of the given level,
// or above,
// into w.
func Init(w io.Writer, level zapcore.Level) {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("Jan _2 15:04:05.000")
	encoderConfig.StacktraceKey = ""
	encoderConfig.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	zapLog = zap.New(core)
}

// Switches are the command line switches
// that set the logging level.
type Switches struct {
	Debug bool
	Quiet bool
}

// SetFlags binds the switches
// to the --debug and --quiet flags.
func (s *Switches) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&s.Debug, "debug", false, "")
	fs.BoolVar(&s.Quiet, "quiet", false, "")
}

// Init sets the logger
// using the level of the switches.
func (s *Switches) Init(w io.Writer) {
	Init(w, Level(s.Debug, s.Quiet))
}

// Info logs a message at info level.
func Info(message string, fields ...zap.Field) {
	zapLog.Info(message, fields...)
}

// Warn logs a message at warning level.
func Warn(message string, fields ...zap.Field) {
	zapLog.Warn(message, fields...)
}

// Debug logs a message at debug level.
func Debug(message string, fields ...zap.Field) {
	zapLog.Debug(message, fields...)
}

// Error logs a message at error level.
func Error(message string, fields ...zap.Field) {
	zapLog.Error(message, fields...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return zapLog.Sync()
}
