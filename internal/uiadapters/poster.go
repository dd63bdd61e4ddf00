// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package uiadapters

import (
	"context"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/yapfastr/yapfastr/core/composer"
	"github.com/yapfastr/yapfastr/core/model"
	"github.com/yapfastr/yapfastr/internal/logging"
	"github.com/yapfastr/yapfastr/internal/twitter"
)

// TweetCreator is the part of the Twitter client the poster needs.
type TweetCreator interface {
	CreateTweet(ctx context.Context, text string) (*twitter.Tweet, error)
}

// Recorder persists post attempts.
type Recorder interface {
	RecordPost(ctx context.Context, p model.Post) (int64, error)
}

// clipboardWrite allows tests to replace the system clipboard.
var clipboardWrite = clipboard.WriteAll

// Poster adapts a TweetCreator to composer.Poster, recording every attempt
// and optionally copying the new tweet's URL to the clipboard.
type Poster struct {
	creator   TweetCreator
	recorder  Recorder
	clipboard bool
	sessionID string
	now       func() time.Time

	mu   sync.Mutex
	last *twitter.Tweet
}

// PosterOption configures a Poster.
type PosterOption func(*Poster)

// WithRecorder records each attempt. A nil recorder disables recording.
func WithRecorder(r Recorder) PosterOption {
	return func(p *Poster) { p.recorder = r }
}

// WithClipboard copies the tweet URL after a successful post.
func WithClipboard(enabled bool) PosterOption {
	return func(p *Poster) { p.clipboard = enabled }
}

// NewPoster returns a Poster with a fresh session id.
func NewPoster(creator TweetCreator, opts ...PosterOption) *Poster {
	p := &Poster{
		creator:   creator,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SessionID identifies the attempts of this run in the history.
func (p *Poster) SessionID() string { return p.sessionID }

// LastTweet returns the most recently created tweet, if any.
func (p *Poster) LastTweet() (*twitter.Tweet, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return nil, false
	}
	t := *p.last
	return &t, true
}

// Post implements composer.Poster. Recording and clipboard failures are
// logged and never turn a successful post into a failure.
func (p *Poster) Post(ctx context.Context, text string) error {
	tw, err := p.creator.CreateTweet(ctx, text)

	entry := model.Post{
		SessionID: p.sessionID,
		Text:      text,
		CreatedAt: p.now().UTC(),
	}
	if err != nil {
		entry.Status = model.PostStatusFailed
		entry.Error = err.Error()
	} else {
		entry.Status = model.PostStatusPosted
		entry.TweetID = tw.ID
		p.mu.Lock()
		p.last = tw
		p.mu.Unlock()
	}

	if p.recorder != nil {
		if _, rerr := p.recorder.RecordPost(ctx, entry); rerr != nil {
			logging.Warnf("could not record post attempt: %v", rerr)
		}
	}
	if err != nil {
		return &composer.PostError{Message: err.Error()}
	}

	if p.clipboard {
		if cerr := clipboardWrite(tw.URL()); cerr != nil {
			logging.Warnf("could not copy tweet url to clipboard: %v", cerr)
		} else {
			logging.Debugf("copied %s to clipboard", tw.URL())
		}
	}
	return nil
}

// *Poster implements composer.Poster
var _ composer.Poster = (*Poster)(nil)
