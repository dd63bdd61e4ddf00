// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/yapfastr/yapfastr/core/model"
)

// Store is the persistence surface used by the UIs and adapters.
type Store interface {
	RecordPost(ctx context.Context, p model.Post) (int64, error)
	RecentPosts(ctx context.Context, limit int) ([]model.Post, error)
	AllPosts(ctx context.Context) ([]model.Post, error)
	ImportPosts(ctx context.Context, posts []model.Post) (int, error)

	AddWords(ctx context.Context, words ...string) (int, error)
	RemoveWords(ctx context.Context, words ...string) (int, error)
	Words(ctx context.Context) ([]string, error)

	Close() error
}

// BunStore implements Store for every supported dialect.
type BunStore struct {
	bun    *bun.DB
	dbType string
}

// *BunStore implements Store
var _ Store = (*BunStore)(nil)

// DB exposes the underlying bun handle, mainly for tests and maintenance.
func (s *BunStore) DB() *bun.DB { return s.bun }

func (s *BunStore) Close() error { return s.bun.Close() }

// RecordPost stores one post attempt and returns its id.
func (s *BunStore) RecordPost(ctx context.Context, p model.Post) (int64, error) {
	pm := postModelFromModel(p)
	if _, err := s.bun.NewInsert().Model(pm).ExcludeColumn("id").Returning("id").Exec(ctx); err != nil {
		return 0, MapDBError(err)
	}
	dbLogf("db: recorded %s post %d", pm.Status, pm.ID)
	return pm.ID, nil
}

// RecentPosts returns up to limit posts, newest first. limit <= 0 means all.
func (s *BunStore) RecentPosts(ctx context.Context, limit int) ([]model.Post, error) {
	var pms []PostModel
	q := s.bun.NewSelect().Model(&pms).OrderExpr("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Post, 0, len(pms))
	for _, p := range pms {
		out = append(out, postModelToModel(p))
	}
	return out, nil
}

// AllPosts returns every post, oldest first.
func (s *BunStore) AllPosts(ctx context.Context) ([]model.Post, error) {
	var pms []PostModel
	if err := s.bun.NewSelect().Model(&pms).OrderExpr("created_at ASC, id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Post, 0, len(pms))
	for _, p := range pms {
		out = append(out, postModelToModel(p))
	}
	return out, nil
}

// ImportPosts inserts posts that are not already present. A post counts as
// present when session, text, status and tweet id all match.
func (s *BunStore) ImportPosts(ctx context.Context, posts []model.Post) (int, error) {
	added := 0
	err := WithTx(ctx, s.bun, func(ctx context.Context, tx bun.Tx) error {
		for _, p := range posts {
			exists, err := tx.NewSelect().Model((*PostModel)(nil)).
				Where("session_id = ?", p.SessionID).
				Where("text = ?", p.Text).
				Where("status = ?", string(p.Status)).
				Where("tweet_id = ?", p.TweetID).
				Exists(ctx)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			if _, err := tx.NewInsert().Model(postModelFromModel(p)).ExcludeColumn("id").Exec(ctx); err != nil {
				return MapDBError(err)
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// AddWords inserts words into the personal dictionary and returns how many
// were new. Blank words and duplicates are skipped.
func (s *BunStore) AddWords(ctx context.Context, words ...string) (int, error) {
	added := 0
	for _, w := range normalizeWords(words) {
		wm := &WordModel{Word: w, AddedAt: time.Now().UTC()}
		_, err := s.bun.NewInsert().Model(wm).ExcludeColumn("id").Exec(ctx)
		if err = MapDBError(err); err != nil {
			if errors.Is(err, ErrDuplicate) {
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}

// RemoveWords deletes words and returns how many rows were removed.
func (s *BunStore) RemoveWords(ctx context.Context, words ...string) (int, error) {
	words = normalizeWords(words)
	if len(words) == 0 {
		return 0, nil
	}
	res, err := s.bun.NewDelete().Model((*WordModel)(nil)).Where("word IN (?)", bun.In(words)).Exec(ctx)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Words lists the personal dictionary in alphabetical order.
func (s *BunStore) Words(ctx context.Context) ([]string, error) {
	var words []string
	err := s.bun.NewSelect().Model((*WordModel)(nil)).Column("word").OrderExpr("word ASC").Scan(ctx, &words)
	if err != nil {
		return nil, err
	}
	return words, nil
}

func normalizeWords(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
