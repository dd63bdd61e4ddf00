// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/yapfastr/yapfastr/core/composer"
)

const (
	colorBackground = lipgloss.Color("#121212")
	colorPrefix     = lipgloss.Color("#c6a0f6")
	colorSuccess    = lipgloss.Color("#a6da95")
	colorOverLimit  = lipgloss.Color("#ed8796")
	colorErrorLabel = lipgloss.Color("#ff4444")
	colorSubtle     = lipgloss.Color("240")
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrefix).
			BorderBackground(colorBackground).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrefix).
			Bold(true)

	prefixStyle   = lipgloss.NewStyle().Foreground(colorPrefix)
	errorStyle    = lipgloss.NewStyle().Foreground(colorErrorLabel)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	overStyle     = lipgloss.NewStyle().Foreground(colorOverLimit)
	misspellStyle = lipgloss.NewStyle().Foreground(colorOverLimit).Underline(true)
	helpStyle     = lipgloss.NewStyle().Foreground(colorSubtle)
)

// indicatorStyle maps the count indicator's tone to a color.
func indicatorStyle(t composer.Tone) lipgloss.Style {
	if t == composer.ToneError {
		return overStyle
	}
	return successStyle
}

// alignFooter places right at the end of a width-column line with left at
// the start. A single space separates the two when they do not fit.
func alignFooter(left, right string, width int) string {
	spaces := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}

// truncate shortens s to at most width display columns.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
