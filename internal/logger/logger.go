/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process logger used by every build stage.
//
// It wraps a zap console logger behind printf-style helpers. Tests silence
// it with SetOutput(io.Discard).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	output io.Writer = os.Stderr
	sugar  *zap.SugaredLogger
)

func init() {
	rebuild()
}

func rebuild() {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(output), level)
	sugar = zap.New(core).Sugar()
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// SetLevel sets the minimum level: "debug", "info", "warn", "error" or "none".
func SetLevel(name string) error {
	switch strings.ToLower(name) {
	case "none", "silent":
		level.SetLevel(zapcore.FatalLevel)
		return nil
	case "", "normal":
		level.SetLevel(zapcore.InfoLevel)
		return nil
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("unknown log level %q", name)
	}
	level.SetLevel(lvl)
	return nil
}

func get() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return sugar
}

// Error logs an error message.
func Error(format string, args ...any) {
	get().Errorf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	get().Warnf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	get().Infof(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	get().Debugf(format, args...)
}
