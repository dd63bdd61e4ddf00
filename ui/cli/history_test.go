// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yapfastr/yapfastr/core/model"
)

func TestHistory_EmptyList(t *testing.T) {
	setupCLI(t)
	out, err := runCLI(t, "", "history", "list")
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	if strings.TrimSpace(out) != "No posts recorded yet." {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestHistory_Disabled(t *testing.T) {
	api := setupCLI(t)
	t.Setenv("YAPFASTR_HISTORY_ENABLED", "false")

	if _, err := runCLI(t, "", "post", "not recorded"); err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if api.calls() != 1 {
		t.Fatalf("expected the post to go out")
	}
	if _, err := runCLI(t, "", "history", "list"); err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Fatalf("expected a history disabled error, got %v", err)
	}
}

func TestHistory_ExportImportRoundTrip(t *testing.T) {
	setupCLI(t)
	if _, err := runCLI(t, "", "post", "keep me"); err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if _, err := runCLI(t, "", "dict", "add", "yapfastr"); err != nil {
		t.Fatalf("dict add failed: %v", err)
	}

	file := filepath.Join(t.TempDir(), "backup.json")
	out, err := runCLI(t, "", "history", "export", "-o", file)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "Exported 1 post(s) and 1 word(s)") {
		t.Fatalf("unexpected export output %q", out)
	}
	if _, err := os.Stat(file + ".zst"); err != nil {
		t.Fatalf("expected .zst to be appended: %v", err)
	}

	// import into a fresh database, twice
	t.Setenv("YAPFASTR_DATABASE_DSN", filepath.Join(t.TempDir(), "other.db"))
	out, err = runCLI(t, "", "history", "import", "-i", file+".zst")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if strings.TrimSpace(out) != "Imported 1 post(s) and 1 word(s)." {
		t.Fatalf("unexpected import output %q", out)
	}
	out, err = runCLI(t, "", "history", "import", file+".zst")
	if err != nil {
		t.Fatalf("second import failed: %v", err)
	}
	if strings.TrimSpace(out) != "Imported 0 post(s) and 0 word(s)." {
		t.Fatalf("expected a repeated import to add nothing, got %q", out)
	}

	out, err = runCLI(t, "", "history", "list")
	if err != nil || !strings.Contains(out, "keep me") {
		t.Fatalf("expected the imported post in the list, got %q (%v)", out, err)
	}
}

func TestHistory_ImportNeedsFile(t *testing.T) {
	setupCLI(t)
	if _, err := runCLI(t, "", "history", "import"); err == nil {
		t.Fatalf("expected an error without an input file")
	}
}

func TestRenderHistory(t *testing.T) {
	posts := []model.Post{
		{Text: "line one\nline two", Status: model.PostStatusPosted, TweetID: "5", CreatedAt: time.Now()},
		{Text: "oops", Status: model.PostStatusFailed, Error: "429 Too Many Requests", CreatedAt: time.Now()},
	}
	out := renderHistory(posts)
	for _, want := range []string{"line one line two", "https://x.com/i/web/status/5", "429 Too Many Requests", "failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestOneLine(t *testing.T) {
	if got := oneLine("a\n b", 10); got != "a b" {
		t.Fatalf("unexpected %q", got)
	}
	if got := oneLine("abcdef", 4); got != "abc…" {
		t.Fatalf("unexpected %q", got)
	}
}
