// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package testutil

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFakePoster_RecordsAndFails(t *testing.T) {
	p := NewFakePoster(errors.New("boom"))
	if err := p.Post(context.Background(), "a"); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
	p.SetErr(nil)
	if err := p.Post(context.Background(), "b"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls := p.Calls(); len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("unexpected calls %v", calls)
	}
}

func TestFakePoster_HoldRelease(t *testing.T) {
	p := NewFakePoster(nil)
	p.Hold()
	done := make(chan struct{})
	go func() {
		_ = p.Post(context.Background(), "held")
		close(done)
	}()
	select {
	case <-done:
		t.Fatalf("post returned while held")
	case <-time.After(20 * time.Millisecond):
	}
	p.Release()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("post still blocked after release")
	}
}
