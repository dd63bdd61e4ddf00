// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import "time"

// PostStatus is the outcome of one post attempt.
type PostStatus string

const (
	PostStatusPosted PostStatus = "posted"
	PostStatusFailed PostStatus = "failed"
)

// Post is one recorded post attempt.
type Post struct {
	ID int64 `json:"id"`
	// SessionID groups the attempts of one compose session.
	SessionID string     `json:"session_id"`
	Text      string     `json:"text"`
	Status    PostStatus `json:"status"`
	Error     string     `json:"error,omitempty"`
	TweetID   string     `json:"tweet_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ExportData is the document written by a history export.
type ExportData struct {
	// SchemaVersion helps in handling changes during import.
	SchemaVersion int      `json:"schema_version"`
	Posts         []Post   `json:"posts"`
	Words         []string `json:"words"`
}

// ExportSchemaVersion is the current ExportData.SchemaVersion.
const ExportSchemaVersion = 1
