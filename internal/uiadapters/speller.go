// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package uiadapters

import (
	"context"

	"github.com/yapfastr/yapfastr/internal/speller"
)

// WordSource lists personal dictionary words.
type WordSource interface {
	Words(ctx context.Context) ([]string, error)
}

// NewSpeller builds a dictionary from the word-list files in paths plus the
// personal words of src. src may be nil.
func NewSpeller(ctx context.Context, paths []string, src WordSource) (*speller.Dictionary, error) {
	d := speller.New()
	if err := d.LoadPaths(paths); err != nil {
		return nil, err
	}
	if src != nil {
		words, err := src.Words(ctx)
		if err != nil {
			return nil, err
		}
		d.Add(words...)
	}
	return d, nil
}
