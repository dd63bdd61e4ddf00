// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yapfastr/yapfastr/core/composer"
	"github.com/yapfastr/yapfastr/internal/i18n"
	"github.com/yapfastr/yapfastr/internal/testutil"
)

type chanDispatcher chan func()

func (d chanDispatcher) Dispatch(fn func()) { d <- fn }

func newTestModel(t *testing.T, verified bool, err error) (Model, chanDispatcher) {
	t.Helper()
	i18n.Init("en")
	d := make(chanDispatcher, 1)
	comp := composer.New(composer.Config{Verified: verified}, testutil.NewFakePoster(err), composer.WithDispatcher(d))
	return New(comp), d
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func nextDispatch(t *testing.T, d chanDispatcher) func() {
	t.Helper()
	select {
	case fn := <-d:
		return fn
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for the post to complete")
		return nil
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_TypingUpdatesComposer(t *testing.T) {
	m, _ := newTestModel(t, false, nil)
	m = typeText(t, m, "hello")

	if got := m.comp.Draft(); got != "tweet: hello" {
		t.Fatalf("expected draft %q, got %q", "tweet: hello", got)
	}
	if got := m.comp.State().Indicator.Text; got != "5" {
		t.Fatalf("expected indicator 5, got %q", got)
	}
	if !strings.Contains(m.View(), "tweet: hello") {
		t.Fatalf("expected the draft in the view:\n%s", m.View())
	}
}

func TestModel_PrefixIsNotEditable(t *testing.T) {
	m, _ := newTestModel(t, false, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	if got := m.input.Value(); got != "" {
		t.Fatalf("expected an empty textarea, got %q", got)
	}
	if got := m.comp.Draft(); got != composer.Prefix {
		t.Fatalf("expected the draft to keep the prefix, got %q", got)
	}
}

func TestModel_PrefixIsTheFirstLinePrompt(t *testing.T) {
	m, _ := newTestModel(t, false, nil)
	m = typeText(t, m, "a")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	m = typeText(t, m, "b")

	view := m.input.View()
	if n := strings.Count(view, composer.Prefix); n != 1 {
		t.Fatalf("expected the prefix once in the input, found %d:\n%s", n, view)
	}
	lines := strings.Split(view, "\n")
	if !strings.HasPrefix(lines[0], composer.Prefix) {
		t.Fatalf("expected the first line to start with the prefix, got %q", lines[0])
	}
	if prefixPrompt(1) != "" || prefixPrompt(0) != composer.Prefix {
		t.Fatalf("the prefix belongs to the first line only")
	}
	if m.input.FocusedStyle.Prompt.GetForeground() != colorPrefix {
		t.Fatalf("expected the prefix drawn in its own color")
	}
}

func TestModel_NewlineBinding(t *testing.T) {
	m, _ := newTestModel(t, false, nil)
	m = typeText(t, m, "a")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	m = typeText(t, m, "b")

	if got := m.comp.Draft(); got != "tweet: a\nb" {
		t.Fatalf("expected a newline in the draft, got %q", got)
	}
}

func TestModel_SubmitSuccessQuits(t *testing.T) {
	m, d := newTestModel(t, false, nil)
	m = typeText(t, m, "hello wrold ")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected the progress tick to start")
	}
	if !m.comp.State().InProgress || m.input.Focused() {
		t.Fatalf("expected a locked, blurred input while posting")
	}

	// input is ignored while posting
	m = typeText(t, m, "zzz")
	if strings.Contains(m.comp.Draft(), "zzz") {
		t.Fatalf("typing must not change the draft while posting")
	}

	m, cmd = update(t, m, dispatchMsg{fn: nextDispatch(t, d)})
	if !isQuit(cmd) {
		t.Fatalf("expected the program to quit after a successful post")
	}
	text, ok := m.comp.Result()
	if !ok || text != "hello wrold" {
		t.Fatalf("expected result (hello wrold, true), got (%q, %v)", text, ok)
	}
}

func TestModel_SubmitFailureShowsMessageAndRefocuses(t *testing.T) {
	m, d := newTestModel(t, false, errors.New("rate limited"))
	m = typeText(t, m, "hello")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, dispatchMsg{fn: nextDispatch(t, d)})

	if isQuit(cmd) {
		t.Fatalf("a failed post must keep the popup open")
	}
	if !m.input.Focused() {
		t.Fatalf("expected the input to regain focus")
	}
	if !strings.Contains(m.View(), "rate limited") {
		t.Fatalf("expected the failure message in the view:\n%s", m.View())
	}

	m = typeText(t, m, "!")
	if got := m.comp.Draft(); got != "tweet: hello!" {
		t.Fatalf("expected editing to resume, got %q", got)
	}
}

func TestModel_OverLimitUnverified(t *testing.T) {
	m, _ := newTestModel(t, false, nil)
	m = typeText(t, m, strings.Repeat("a", 251))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	st := m.comp.State()
	if st.InProgress || st.Locked {
		t.Fatalf("an over-limit draft must not be posted")
	}
	view := m.View()
	if !strings.Contains(view, "Exceeded character limit.") {
		t.Fatalf("expected the limit error in the view:\n%s", view)
	}
	if !strings.Contains(view, "251/250") {
		t.Fatalf("expected the over-limit indicator in the view:\n%s", view)
	}
}

func TestModel_EscapeCancels(t *testing.T) {
	m, _ := newTestModel(t, false, nil)
	m = typeText(t, m, "never mind")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !isQuit(cmd) {
		t.Fatalf("expected esc to quit")
	}
	if text, ok := m.comp.Result(); ok || text != "" {
		t.Fatalf("expected no result after cancel, got (%q, %v)", text, ok)
	}
}

func TestModel_TickStopsWhenIdle(t *testing.T) {
	m, _ := newTestModel(t, false, nil)
	m.ticking = true
	m.percent = 0.5
	m, cmd := update(t, m, tickMsg{id: m.tickID})
	if cmd != nil || m.ticking || m.percent != 0 {
		t.Fatalf("expected the animation to stop when nothing is in flight")
	}
}

func TestModel_StaleTicksAreDropped(t *testing.T) {
	i18n.Init("en")
	p := testutil.NewFakePoster(errors.New("rate limited"))
	d := make(chanDispatcher, 1)
	m := New(composer.New(composer.Config{}, p, composer.WithDispatcher(d)))
	m = typeText(t, m, "again")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	first := m.tickID
	m, _ = update(t, m, dispatchMsg{fn: nextDispatch(t, d)})
	if m.ticking {
		t.Fatalf("expected the animation to stop after the failure")
	}

	p.SetErr(nil)
	p.Hold()
	t.Cleanup(p.Release)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || m.tickID == first {
		t.Fatalf("expected a new animation run for the second post")
	}

	m, cmd = update(t, m, tickMsg{id: first})
	if cmd != nil || m.percent != 0 {
		t.Fatalf("a tick from the earlier run must not advance the bar")
	}
	m, cmd = update(t, m, tickMsg{id: m.tickID})
	if cmd == nil || m.percent != progressStep {
		t.Fatalf("expected the current run to advance, percent %v", m.percent)
	}
}

func TestUnknownWords_Dedupes(t *testing.T) {
	spans := []composer.Span{{Start: 0, Length: 5, Word: "wrold"}, {Start: 6, Length: 3, Word: "teh"}, {Start: 10, Length: 5, Word: "wrold"}}
	got := unknownWords(spans)
	if len(got) != 2 || got[0] != "wrold" || got[1] != "teh" {
		t.Fatalf("unexpected words %v", got)
	}
}

func TestModel_CancelWhilePosting(t *testing.T) {
	i18n.Init("en")
	p := testutil.NewFakePoster(nil)
	p.Hold()
	d := make(chanDispatcher, 1)
	m := New(composer.New(composer.Config{}, p, composer.WithDispatcher(d)))
	m = typeText(t, m, "slow")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Fatalf("expected esc to quit while posting")
	}
	p.Release()
	m, _ = update(t, m, dispatchMsg{fn: nextDispatch(t, d)})
	if text, ok := m.comp.Result(); ok || text != "" {
		t.Fatalf("a late success must not produce a result, got (%q, %v)", text, ok)
	}
}
