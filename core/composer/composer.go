// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package composer

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/yapfastr/yapfastr/internal/i18n"
	"github.com/yapfastr/yapfastr/internal/logging"
)

// Poster publishes text. It may block on I/O and is always called off the UI
// loop.
type Poster interface {
	Post(ctx context.Context, text string) error
}

// Speller reports which of the given words are not in its dictionary.
type Speller interface {
	UnknownWords(words []string) []string
}

// Dispatcher runs fn on the UI loop's own turn, never concurrently with
// other UI event handling. Dispatch must be safe to call from any goroutine.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatchFunc adapts a plain function to the Dispatcher interface.
type DispatchFunc func(fn func())

func (f DispatchFunc) Dispatch(fn func()) { f(fn) }

// Config carries the account settings the composer needs. It is passed in at
// construction; the composer never reads the environment.
type Config struct {
	Verified bool
}

// Status is the outcome of the latest submission.
type Status int

const (
	NotSubmitted Status = iota
	Succeeded
	Failed
)

// State is a snapshot of everything a UI needs to render the session.
type State struct {
	Draft      string
	Count      int
	Indicator  Indicator
	Misspelled []Span
	Error      string
	Locked     bool
	InProgress bool
	Status     Status
	Closed     bool
}

// Option configures a Composer.
type Option func(*Composer)

// WithSpeller enables misspelling detection.
func WithSpeller(s Speller) Option {
	return func(c *Composer) { c.speller = s }
}

// WithDispatcher sets how post completions reach the UI loop. Without one the
// completion runs on the posting goroutine.
func WithDispatcher(d Dispatcher) Option {
	return func(c *Composer) { c.dispatch = d }
}

// WithContext sets the context handed to the Poster. It is not cancelled by
// Cancel; in-flight posts always run to completion.
func WithContext(ctx context.Context) Option {
	return func(c *Composer) { c.ctx = ctx }
}

// WithCompletionHook registers fn to run on the UI loop after every handled
// post completion.
func WithCompletionHook(fn func(success bool, message string)) Option {
	return func(c *Composer) { c.onComplete = fn }
}

// Composer is one compose session.
type Composer struct {
	cfg        Config
	poster     Poster
	speller    Speller
	dispatch   Dispatcher
	ctx        context.Context
	onComplete func(success bool, message string)

	mu         sync.Mutex
	draft      Draft
	indicator  Indicator
	spans      []Span
	errText    string
	locked     bool
	inProgress bool
	pending    string
	seq        uint64
	status     Status
	wantFocus  bool

	closed bool
	result string
	ok     bool
	done   chan struct{}
}

// New creates a session whose draft holds only the prefix.
func New(cfg Config, poster Poster, opts ...Option) *Composer {
	c := &Composer{
		cfg:    cfg,
		poster: poster,
		ctx:    context.Background(),
		draft:  NewDraft(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.dispatch == nil {
		c.dispatch = DispatchFunc(func(fn func()) { fn() })
	}
	c.indicator = indicatorFor(0, cfg.Verified)
	return c
}

// SetDraft replaces the buffer with text as typed by the user. It is ignored
// while the input is locked or after the session closed, and reports whether
// the buffer was taken. Call OnContentChanged afterwards.
func (c *Composer) SetDraft(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locked || c.closed {
		return false
	}
	c.draft.text = text
	return true
}

// Edit is SetDraft followed by OnContentChanged.
func (c *Composer) Edit(text string) bool {
	if !c.SetDraft(text) {
		return false
	}
	c.OnContentChanged()
	return true
}

// OnContentChanged re-enforces the prefix and recomputes the count indicator
// and misspelled spans.
func (c *Composer) OnContentChanged() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.draft.enforce() {
		logging.Debugf("composer: prefix altered, draft rewound")
	}
	c.indicator = indicatorFor(c.draft.Count(), c.cfg.Verified)
	c.spans = misspelled(c.draft.Content(), c.speller)
}

// Submit validates the trimmed content and, when it is non-empty and valid,
// starts an asynchronous post. Validation failures are shown and returned as
// *ValidationError. Empty content is a silent no-op.
func (c *Composer) Submit() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.locked {
		c.mu.Unlock()
		return ErrLocked
	}

	text := c.draft.Trimmed()
	count := utf8.RuneCountInString(text)
	if count > Limit && !c.cfg.Verified {
		c.showError(i18n.T("composer.limit_exceeded"))
		c.mu.Unlock()
		logging.Debugf("composer: rejected submission of %d characters", count)
		return &ValidationError{Err: ErrLimitExceeded, Count: count, Limit: Limit}
	}
	if text == "" {
		c.mu.Unlock()
		return nil
	}

	c.showError("")
	c.locked = true
	c.inProgress = true
	c.pending = text
	c.seq++
	seq := c.seq
	ctx := c.ctx
	c.mu.Unlock()

	logging.Debugf("composer: posting %d characters", count)
	go c.post(ctx, seq, text)
	return nil
}

func (c *Composer) post(ctx context.Context, seq uint64, text string) {
	var message string
	err := c.poster.Post(ctx, text)
	if err != nil {
		message = err.Error()
	}
	c.dispatch.Dispatch(func() {
		c.complete(seq, err == nil, message)
	})
}

// OnPostCompleted delivers the outcome of the in-flight submission. It must
// run on the UI loop. Calls with nothing in flight, or after the session
// closed, are no-ops.
func (c *Composer) OnPostCompleted(success bool, message string) {
	c.mu.Lock()
	seq := c.seq
	c.mu.Unlock()
	c.complete(seq, success, message)
}

func (c *Composer) complete(seq uint64, success bool, message string) {
	c.mu.Lock()
	if c.closed || !c.inProgress || seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.inProgress = false
	if success {
		c.status = Succeeded
		c.terminate(c.pending, true)
	} else {
		c.status = Failed
		c.showError(message)
		c.locked = false
		c.wantFocus = true
	}
	hook := c.onComplete
	c.mu.Unlock()

	if success {
		logging.Debugf("composer: posted")
	} else {
		logging.Debugf("composer: post failed: %s", message)
	}
	if hook != nil {
		hook(success, message)
	}
}

// Cancel ends the session without a result.
func (c *Composer) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terminate("", false)
}

// Result blocks until the session ends and returns the submitted text, or
// false when the session was cancelled.
func (c *Composer) Result() (string, bool) {
	<-c.done
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.ok
}

// Done is closed when the session ends.
func (c *Composer) Done() <-chan struct{} { return c.done }

// TakeFocusRequest reports, once, that the input should regain focus.
func (c *Composer) TakeFocusRequest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	want := c.wantFocus
	c.wantFocus = false
	return want
}

// State returns a snapshot for rendering.
func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	spans := make([]Span, len(c.spans))
	copy(spans, c.spans)
	return State{
		Draft:      c.draft.Text(),
		Count:      c.draft.Count(),
		Indicator:  c.indicator,
		Misspelled: spans,
		Error:      c.errText,
		Locked:     c.locked,
		InProgress: c.inProgress,
		Status:     c.status,
		Closed:     c.closed,
	}
}

// Draft returns the full buffer including the prefix.
func (c *Composer) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Text()
}

// showError sets the error banner. Caller holds c.mu.
func (c *Composer) showError(message string) {
	c.errText = message
}

// terminate closes the session once. Caller holds c.mu.
func (c *Composer) terminate(text string, ok bool) {
	if c.closed {
		return
	}
	c.closed = true
	c.result = text
	c.ok = ok
	close(c.done)
}
