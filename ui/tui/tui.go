// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yapfastr/yapfastr/core/composer"
	"github.com/yapfastr/yapfastr/internal/logging"
)

// Dispatcher hands composer callbacks to a running program as messages, so
// they run inside Update like any other event.
type Dispatcher struct {
	mu sync.Mutex
	p  *tea.Program
}

func (d *Dispatcher) attach(p *tea.Program) {
	d.mu.Lock()
	d.p = p
	d.mu.Unlock()
}

// Dispatch implements composer.Dispatcher. Send blocks until the program
// reads the message and returns immediately once the program has exited.
func (d *Dispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	p := d.p
	d.mu.Unlock()
	if p == nil {
		logging.Warnf("tui: dispatch before the program started, callback dropped")
		return
	}
	p.Send(dispatchMsg{fn: fn})
}

// *Dispatcher implements composer.Dispatcher
var _ composer.Dispatcher = (*Dispatcher)(nil)

// Builder creates the session's composer around the popup's dispatcher.
type Builder func(d composer.Dispatcher) *composer.Composer

// Run shows the popup until the session ends and returns its result. A
// program that exits for another reason cancels the session.
func Run(build Builder, opts ...tea.ProgramOption) (string, bool, error) {
	d := &Dispatcher{}
	comp := build(d)
	p := tea.NewProgram(New(comp), opts...)
	d.attach(p)

	_, err := p.Run()
	comp.Cancel()
	if err != nil {
		return "", false, err
	}
	text, ok := comp.Result()
	return text, ok, nil
}
