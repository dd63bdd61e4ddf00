// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package loop provides a single-consumer event loop for headless sessions.
// Work handed to Dispatch from any goroutine runs one item at a time on the
// goroutine that called Run.
package loop

import (
	"context"
	"sync"

	"github.com/yapfastr/yapfastr/core/composer"
)

const defaultBacklog = 16

type Loop struct {
	work chan func()
	quit chan struct{}
	once sync.Once
}

func New() *Loop {
	return &Loop{
		work: make(chan func(), defaultBacklog),
		quit: make(chan struct{}),
	}
}

// Dispatch queues fn. After Close it is dropped.
func (l *Loop) Dispatch(fn func()) {
	select {
	case <-l.quit:
		return
	default:
	}
	select {
	case l.work <- fn:
	case <-l.quit:
	}
}

// Run processes queued work until Close is called or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case fn := <-l.work:
			fn()
		case <-l.quit:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close stops Run. Safe to call more than once and from inside queued work.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.quit) })
}

// *Loop implements composer.Dispatcher
var _ composer.Dispatcher = (*Loop)(nil)
