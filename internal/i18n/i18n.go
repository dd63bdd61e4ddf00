// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides translated user-facing strings. Translation files are
// YAML documents embedded from the 'locales' directory and loaded into a
// go-i18n bundle.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init loads every embedded locale and selects lang. Unknown languages fall
// back to English.
func Init(l string) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = b.ParseMessageFileBytes(data, f.Name())
	}

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	localizer = i18n.NewLocalizer(b, l, language.English.String())
	lang = l
}

// SetLang changes the active language.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the active language as passed to Init.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// GetAvailableLocales maps every embedded language tag to its self-name.
func GetAvailableLocales() map[string]string {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b == nil {
		Init("en")
		mu.RLock()
		b = bundle
		mu.RUnlock()
	}
	out := make(map[string]string)
	for _, tag := range b.LanguageTags() {
		out[tag.String()] = display.Self.Name(tag)
	}
	return out
}

// T translates messageID. A single map argument is used as template data;
// other arguments are applied fmt-style to the translated text. Unknown IDs
// are returned as-is.
func T(messageID string, args ...any) string {
	mu.RLock()
	loc := localizer
	mu.RUnlock()
	if loc == nil {
		Init("en")
		mu.RLock()
		loc = localizer
		mu.RUnlock()
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	var fmtArgs []any
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
		} else {
			fmtArgs = args
		}
	} else {
		fmtArgs = args
	}

	msg, err := loc.Localize(cfg)
	if err != nil {
		msg = messageID
	}
	if len(fmtArgs) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, fmtArgs...)
	}
	return msg
}
