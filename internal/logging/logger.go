// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide logger. Output goes to stderr so
// stdout stays reserved for the submitted text.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than reaching for L directly.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "yapfastr"})

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// SetOutput redirects log output, e.g. while a full-screen UI owns stderr.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
