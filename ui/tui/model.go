// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yapfastr/yapfastr/core/composer"
	"github.com/yapfastr/yapfastr/internal/i18n"
)

const (
	defaultWidth = 60
	inputHeight  = 4
	tickInterval = 10 * time.Millisecond
	// progressStep advances the bar by 10 of 300 units per tick.
	progressStep = 10.0 / 300.0
)

// dispatchMsg carries a composer callback onto the program's update loop.
type dispatchMsg struct{ fn func() }

// tickMsg advances the progress bar. id ties it to one animation run so a
// chain left over from an earlier post dies out.
type tickMsg struct{ id int }

// Model is the popup: a textarea holding the content after the prefix, a
// status line with the error banner and count indicator, and a progress bar
// while posting. The prefix is drawn as the first line's prompt.
type Model struct {
	comp  *composer.Composer
	input textarea.Model
	bar   progress.Model
	help  help.Model
	keys  KeyMap

	width   int
	percent float64
	ticking bool
	tickID  int
}

// New builds the popup for comp. The textarea starts focused with the
// cursor after the prefix.
func New(comp *composer.Composer) Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.FocusedStyle.Prompt = prefixStyle
	ta.BlurredStyle.Prompt = prefixStyle
	ta.SetPromptFunc(utf8.RuneCountInString(composer.Prefix), prefixPrompt)
	ta.SetHeight(inputHeight)
	ta.SetWidth(defaultWidth)
	// enter submits; newlines go through KeyMap.Newline.
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.SetValue(content(comp.Draft()))
	ta.CursorEnd()
	ta.Focus()

	bar := progress.New(
		progress.WithSolidFill(string(colorSuccess)),
		progress.WithoutPercentage(),
		progress.WithWidth(defaultWidth),
	)

	return Model{
		comp:  comp,
		input: ta,
		bar:   bar,
		help:  help.New(),
		keys:  DefaultKeyMap(),
		width: defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case dispatchMsg:
		msg.fn()
		return m.afterCompletion()

	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		if !m.comp.State().InProgress {
			m.ticking = false
			m.percent = 0
			return m, nil
		}
		m.percent += progressStep
		if m.percent > 1 {
			m.percent = 0
		}
		return m, tick(m.tickID)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.comp.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		if m.comp.State().Locked {
			return m, nil
		}
		// The error is already on the banner; nothing else to do with it.
		_ = m.comp.Submit()
		st := m.comp.State()
		if st.Closed {
			return m, tea.Quit
		}
		if st.InProgress {
			m.input.Blur()
			if !m.ticking {
				return m, m.startTicking()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Newline):
		if m.comp.State().Locked {
			return m, nil
		}
		m.input.InsertString("\n")
		m.sync()
		return m, nil
	}

	if m.comp.State().Locked {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.sync()
	return m, cmd
}

// sync pushes the textarea into the composer and takes the buffer back when
// the composer rewrote it.
func (m *Model) sync() {
	value := m.input.Value()
	if !m.comp.Edit(composer.Prefix + value) {
		return
	}
	if got := content(m.comp.Draft()); got != value {
		m.input.SetValue(got)
		m.input.CursorEnd()
	}
}

// startTicking begins a new animation run; ticks of earlier runs are dropped.
func (m *Model) startTicking() tea.Cmd {
	m.tickID++
	m.ticking = true
	m.percent = 0
	return tick(m.tickID)
}

func (m *Model) stopTicking() {
	m.tickID++
	m.ticking = false
	m.percent = 0
}

func (m Model) afterCompletion() (tea.Model, tea.Cmd) {
	if m.comp.State().Closed {
		return m, tea.Quit
	}
	if m.comp.TakeFocusRequest() {
		m.stopTicking()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *Model) resize(width int) {
	if width <= 0 {
		return
	}
	// border and padding take two columns on each side
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	m.width = inner
	m.input.SetWidth(inner)
	m.bar.Width = inner
	m.help.Width = inner
}

func (m Model) View() string {
	st := m.comp.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	indicator := indicatorStyle(st.Indicator.Tone).Render(st.Indicator.Text)
	banner := ""
	if st.Error != "" {
		banner = errorStyle.Render(truncate(st.Error, m.width-lipgloss.Width(indicator)-1))
	} else if st.InProgress {
		banner = helpStyle.Render(i18n.T("tui.posting"))
	}
	b.WriteString(alignFooter(banner, indicator, m.width))

	if words := unknownWords(st.Misspelled); len(words) > 0 {
		b.WriteString("\n")
		b.WriteString(misspellStyle.Render(truncate(i18n.T("tui.unknown_words", strings.Join(words, ", ")), m.width)))
	}
	if st.InProgress {
		b.WriteString("\n")
		b.WriteString(m.bar.ViewAs(m.percent))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return frameStyle.Render(b.String())
}

// unknownWords lists each misspelled word once, in order of appearance.
func unknownWords(spans []composer.Span) []string {
	seen := make(map[string]bool, len(spans))
	var out []string
	for _, s := range spans {
		if seen[s.Word] {
			continue
		}
		seen[s.Word] = true
		out = append(out, s.Word)
	}
	return out
}

func tick(id int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

// prefixPrompt shows the prefix on the first display line only.
func prefixPrompt(line int) string {
	if line == 0 {
		return composer.Prefix
	}
	return ""
}

// content is draft without the prefix.
func content(draft string) string {
	return strings.TrimPrefix(draft, composer.Prefix)
}
