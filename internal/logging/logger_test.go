// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer swaps L with a buffer-backed logger and
// checks every helper reaches it.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetDebug_TogglesDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	defer func() { L = prev }()

	SetDebug(false)
	Debugf("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug output must be suppressed at info level")
	}
	SetDebug(true)
	Debugf("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected debug output after SetDebug(true); got: %s", buf.String())
	}
}

func TestSetOutput_Redirects(t *testing.T) {
	prev := L
	L = clog.New(&bytes.Buffer{})
	defer func() { L = prev }()

	var held bytes.Buffer
	SetOutput(&held)
	Warnf("while the popup is open")
	if !strings.Contains(held.String(), "while the popup is open") {
		t.Fatalf("expected output in the redirected writer; got: %q", held.String())
	}
}
