// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package speller implements a word-list dictionary used to flag unknown
// words while composing. Lookups are case-insensitive using Unicode case
// folding.
package speller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/yapfastr/yapfastr/internal/logging"
	"golang.org/x/text/cases"
)

type Dictionary struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

func New() *Dictionary {
	return &Dictionary{words: make(map[string]struct{})}
}

func fold(w string) string {
	// A Caser is stateful; never share one between goroutines.
	return cases.Fold().String(w)
}

// Add inserts words. Blank entries are skipped.
func (d *Dictionary) Add(words ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		d.words[fold(w)] = struct{}{}
	}
}

// Len returns the number of distinct folded words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// LoadReader adds one word per line from r. Lines starting with '#' are
// comments. It returns the number of lines added.
func (d *Dictionary) LoadReader(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	var batch []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		batch = append(batch, line)
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	d.Add(batch...)
	return len(batch), nil
}

// LoadFile adds the words of a word-list file.
func (d *Dictionary) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()
	n, err := d.LoadReader(f)
	if err != nil {
		return n, fmt.Errorf("read %s: %w", path, err)
	}
	return n, nil
}

// LoadPaths loads every existing file in paths. Missing files are skipped;
// other errors are returned.
func (d *Dictionary) LoadPaths(paths []string) error {
	for _, p := range paths {
		n, err := d.LoadFile(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logging.Debugf("speller: word list %s not found, skipped", p)
				continue
			}
			return err
		}
		logging.Debugf("speller: loaded %d words from %s", n, p)
	}
	return nil
}

// UnknownWords returns the words not in the dictionary. An empty dictionary
// knows every word, so nothing is flagged when no word list is installed.
// Tokens containing digits or underscores are treated as known.
func (d *Dictionary) UnknownWords(words []string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if len(d.words) == 0 {
		return nil
	}
	var out []string
	for _, w := range words {
		if skipCheck(w) {
			continue
		}
		if _, ok := d.words[fold(w)]; ok {
			continue
		}
		out = append(out, w)
	}
	return out
}

func skipCheck(w string) bool {
	for _, r := range w {
		if unicode.IsDigit(r) || r == '_' {
			return true
		}
	}
	return false
}
