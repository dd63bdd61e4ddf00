// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds small test doubles shared across packages.
package testutil

import (
	"context"
	"sync"
)

// FakePoster is an in-memory post capability used by tests to avoid real
// network operations. It records every text and returns the configured error.
type FakePoster struct {
	mu    sync.Mutex
	calls []string
	err   error
	gate  chan struct{}
}

// NewFakePoster returns a FakePoster failing with err (nil for success).
func NewFakePoster(err error) *FakePoster {
	return &FakePoster{err: err}
}

// Post records text and returns the configured error. When a gate is set it
// blocks until Release is called.
func (f *FakePoster) Post(_ context.Context, text string) error {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// SetErr changes the outcome of later posts.
func (f *FakePoster) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Hold makes later posts block until Release.
func (f *FakePoster) Hold() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gate = make(chan struct{})
}

// Release unblocks posts held by Hold.
func (f *FakePoster) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gate != nil {
		close(f.gate)
		f.gate = nil
	}
}

// Calls returns a copy of the posted texts.
func (f *FakePoster) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
