// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package speller

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDictionary_CaseFoldedLookup(t *testing.T) {
	d := New()
	n, err := d.LoadReader(strings.NewReader("# comment\nhello\nWorld\n\nstraße\n"))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 words loaded, got %d", n)
	}
	got := d.UnknownWords([]string{"Hello", "WORLD", "STRASSE", "wrold"})
	if !reflect.DeepEqual(got, []string{"wrold"}) {
		t.Fatalf("expected only wrold unknown, got %v", got)
	}
}

func TestDictionary_SkipsDigitsAndUnderscores(t *testing.T) {
	d := New()
	d.Add("hello")
	if got := d.UnknownWords([]string{"2024", "h4x0r", "snake_case"}); len(got) != 0 {
		t.Fatalf("expected nothing flagged, got %v", got)
	}
}

func TestDictionary_EmptyFlagsNothing(t *testing.T) {
	d := New()
	if got := d.UnknownWords([]string{"anything", "zzzz"}); got != nil {
		t.Fatalf("expected empty dictionary to flag nothing, got %v", got)
	}
}

func TestDictionary_LoadPathsSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "words")
	if err := os.WriteFile(list, []byte("alpha\nbeta\n"), 0o600); err != nil {
		t.Fatalf("write list: %v", err)
	}
	d := New()
	if err := d.LoadPaths([]string{filepath.Join(dir, "missing"), list}); err != nil {
		t.Fatalf("LoadPaths: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 words, got %d", d.Len())
	}
}

func TestDictionary_LoadPathsReportsDirectory(t *testing.T) {
	d := New()
	if err := d.LoadPaths([]string{t.TempDir()}); err == nil {
		t.Fatalf("expected an error when a path is a directory")
	}
}
