// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"strings"
	"testing"
)

func TestDict_AddListRemove(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "", "dict", "list")
	if err != nil || strings.TrimSpace(out) != "The personal dictionary is empty." {
		t.Fatalf("expected an empty dictionary, got %q (%v)", out, err)
	}

	out, err = runCLI(t, "", "dict", "add", "yapfastr", "bubbletea", "yapfastr")
	if err != nil || strings.TrimSpace(out) != "Added 2 word(s) to the personal dictionary." {
		t.Fatalf("unexpected add result %q (%v)", out, err)
	}

	out, err = runCLI(t, "", "dict", "list")
	if err != nil || out != "bubbletea\nyapfastr\n" {
		t.Fatalf("unexpected list %q (%v)", out, err)
	}

	out, err = runCLI(t, "", "dict", "rm", "bubbletea", "missing")
	if err != nil || strings.TrimSpace(out) != "Removed 1 word(s) from the personal dictionary." {
		t.Fatalf("unexpected remove result %q (%v)", out, err)
	}
}
