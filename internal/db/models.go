// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"time"

	"github.com/uptrace/bun"
	"github.com/yapfastr/yapfastr/core/model"
)

type PostModel struct {
	bun.BaseModel `bun:"table:posts"`

	ID        int64     `bun:"id,pk,autoincrement"`
	SessionID string    `bun:"session_id,notnull"`
	Text      string    `bun:"text,type:text,notnull"`
	Status    string    `bun:"status,notnull"`
	Error     string    `bun:"error,type:text,notnull"`
	TweetID   string    `bun:"tweet_id,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

type WordModel struct {
	bun.BaseModel `bun:"table:dictionary_words"`

	ID      int64     `bun:"id,pk,autoincrement"`
	Word    string    `bun:"word,notnull,unique"`
	AddedAt time.Time `bun:"added_at,notnull"`
}

func postModelToModel(p PostModel) model.Post {
	return model.Post{
		ID:        p.ID,
		SessionID: p.SessionID,
		Text:      p.Text,
		Status:    model.PostStatus(p.Status),
		Error:     p.Error,
		TweetID:   p.TweetID,
		CreatedAt: p.CreatedAt,
	}
}

func postModelFromModel(p model.Post) *PostModel {
	created := p.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return &PostModel{
		SessionID: p.SessionID,
		Text:      p.Text,
		Status:    string(p.Status),
		Error:     p.Error,
		TweetID:   p.TweetID,
		CreatedAt: created.UTC(),
	}
}
