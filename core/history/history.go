// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package history moves the post history and personal dictionary in and out
// of a store as zstd-compressed JSON documents.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/yapfastr/yapfastr/core/model"
)

// Source is what an export reads from.
type Source interface {
	AllPosts(ctx context.Context) ([]model.Post, error)
	Words(ctx context.Context) ([]string, error)
}

// Sink is what an import writes to.
type Sink interface {
	ImportPosts(ctx context.Context, posts []model.Post) (int, error)
	AddWords(ctx context.Context, words ...string) (int, error)
}

// Collect gathers everything exportable from src.
func Collect(ctx context.Context, src Source) (*model.ExportData, error) {
	posts, err := src.AllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("read posts: %w", err)
	}
	words, err := src.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return &model.ExportData{SchemaVersion: model.ExportSchemaVersion, Posts: posts, Words: words}, nil
}

// WriteExport writes compressed JSON export data to w.
func WriteExport(data *model.ExportData, w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode export: %w", err)
	}
	return zw.Close()
}

// ReadExport decodes a document written by WriteExport.
func ReadExport(r io.Reader) (*model.ExportData, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()
	var data model.ExportData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	if data.SchemaVersion > model.ExportSchemaVersion {
		return nil, fmt.Errorf("export schema version %d is newer than supported version %d", data.SchemaVersion, model.ExportSchemaVersion)
	}
	return &data, nil
}

// Merge adds data to dst, skipping what dst already has. It returns the
// number of posts and words added.
func Merge(ctx context.Context, dst Sink, data *model.ExportData) (int, int, error) {
	posts, err := dst.ImportPosts(ctx, data.Posts)
	if err != nil {
		return 0, 0, fmt.Errorf("import posts: %w", err)
	}
	words, err := dst.AddWords(ctx, data.Words...)
	if err != nil {
		return posts, 0, fmt.Errorf("import words: %w", err)
	}
	return posts, words, nil
}
