// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}
	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present, got %v", k, av)
		}
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	defer Init("en")

	if got := T("composer.limit_exceeded"); got != "Exceeded character limit." {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("tui.unknown_words", "wrold"); got != "unknown: wrold" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	if got := T("composer.limit_exceeded"); got != "Zeichenlimit überschritten." {
		t.Fatalf("expected German translation, got %q", got)
	}
}

func TestT_UnknownIDAndLanguageFallback(t *testing.T) {
	Init("fr")
	defer Init("en")

	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected the id back for unknown messages, got %q", got)
	}
	if got := T("cli.error.empty"); got != "nothing to post" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}
