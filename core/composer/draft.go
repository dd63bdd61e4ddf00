// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package composer

import (
	"strings"
	"unicode/utf8"
)

const (
	// Prefix is the reserved, non-editable head of every draft.
	Prefix = "tweet: "
	// Limit is the character limit for unverified accounts.
	Limit = 250
)

// Draft is the editable buffer: Prefix followed by the user content.
type Draft struct {
	text string
}

// NewDraft returns a draft holding only the prefix.
func NewDraft() Draft {
	return Draft{text: Prefix}
}

// Text returns the full buffer including the prefix.
func (d Draft) Text() string { return d.text }

// Content returns everything after the prefix, untrimmed.
func (d Draft) Content() string {
	if !d.HasPrefix() {
		return ""
	}
	return d.text[len(Prefix):]
}

// Trimmed returns the content with surrounding whitespace removed.
func (d Draft) Trimmed() string {
	return strings.TrimSpace(d.Content())
}

// Count is the number of characters after the prefix.
func (d Draft) Count() int {
	return utf8.RuneCountInString(d.Content())
}

// HasPrefix reports whether the buffer still starts with the literal prefix.
func (d Draft) HasPrefix() bool {
	return strings.HasPrefix(d.text, Prefix)
}

// enforce rewinds the buffer to the bare prefix when the prefix was altered.
// It reports whether a rewind happened.
func (d *Draft) enforce() bool {
	if d.HasPrefix() {
		return false
	}
	d.text = Prefix
	return true
}
