// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/yapfastr/yapfastr/internal/i18n"
)

type KeyMap struct {
	Submit  key.Binding
	Newline key.Binding
	Cancel  key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Submit, km.Newline, km.Cancel}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Submit, km.Newline, km.Cancel}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap builds the bindings with help text in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("tui.help.submit")),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter", "ctrl+j"),
			key.WithHelp("alt+enter", i18n.T("tui.help.newline")),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", i18n.T("tui.help.cancel")),
		),
	}
}
