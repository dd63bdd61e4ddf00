// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package uiadapters

import (
	"context"
	"errors"
	"testing"

	"github.com/yapfastr/yapfastr/core/composer"
	"github.com/yapfastr/yapfastr/core/model"
	"github.com/yapfastr/yapfastr/internal/twitter"
)

type fakeCreator struct {
	tweet *twitter.Tweet
	err   error
	texts []string
}

func (f *fakeCreator) CreateTweet(_ context.Context, text string) (*twitter.Tweet, error) {
	f.texts = append(f.texts, text)
	return f.tweet, f.err
}

type memRecorder struct {
	posts []model.Post
	err   error
}

func (m *memRecorder) RecordPost(_ context.Context, p model.Post) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.posts = append(m.posts, p)
	return int64(len(m.posts)), nil
}

func stubClipboard(t *testing.T, err error) *[]string {
	t.Helper()
	var copied []string
	old := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = append(copied, s)
		return err
	}
	t.Cleanup(func() { clipboardWrite = old })
	return &copied
}

func TestPoster_RecordsSuccessAndCopiesURL(t *testing.T) {
	copied := stubClipboard(t, nil)
	rec := &memRecorder{}
	creator := &fakeCreator{tweet: &twitter.Tweet{ID: "42", Text: "hello"}}
	p := NewPoster(creator, WithRecorder(rec), WithClipboard(true))

	if err := p.Post(context.Background(), "hello"); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(rec.posts) != 1 {
		t.Fatalf("expected one recorded post, got %d", len(rec.posts))
	}
	got := rec.posts[0]
	if got.Status != model.PostStatusPosted || got.TweetID != "42" || got.Text != "hello" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.SessionID == "" || got.SessionID != p.SessionID() {
		t.Fatalf("expected session id %q, got %q", p.SessionID(), got.SessionID)
	}
	if len(*copied) != 1 || (*copied)[0] != "https://x.com/i/web/status/42" {
		t.Fatalf("unexpected clipboard writes: %v", *copied)
	}
	if tw, ok := p.LastTweet(); !ok || tw.ID != "42" {
		t.Fatalf("expected last tweet 42, got %v %v", tw, ok)
	}
}

func TestPoster_FailureIsRecordedAndWrapped(t *testing.T) {
	copied := stubClipboard(t, nil)
	rec := &memRecorder{}
	p := NewPoster(&fakeCreator{err: errors.New("429 Too Many Requests")}, WithRecorder(rec), WithClipboard(true))

	err := p.Post(context.Background(), "hello")
	var pe *composer.PostError
	if !errors.As(err, &pe) || pe.Message != "429 Too Many Requests" {
		t.Fatalf("expected PostError carrying the api message, got %T %v", err, err)
	}
	if len(rec.posts) != 1 || rec.posts[0].Status != model.PostStatusFailed || rec.posts[0].Error != "429 Too Many Requests" {
		t.Fatalf("unexpected records: %+v", rec.posts)
	}
	if len(*copied) != 0 {
		t.Fatalf("clipboard must not be touched on failure, got %v", *copied)
	}
	if _, ok := p.LastTweet(); ok {
		t.Fatalf("expected no last tweet after a failure")
	}
}

func TestPoster_SideEffectFailuresAreNotFatal(t *testing.T) {
	stubClipboard(t, errors.New("no clipboard utility"))
	rec := &memRecorder{err: errors.New("disk full")}
	p := NewPoster(&fakeCreator{tweet: &twitter.Tweet{ID: "7"}}, WithRecorder(rec), WithClipboard(true))

	if err := p.Post(context.Background(), "hi"); err != nil {
		t.Fatalf("expected success despite recorder and clipboard errors, got %v", err)
	}
}

func TestPoster_ClipboardOffByDefault(t *testing.T) {
	copied := stubClipboard(t, nil)
	p := NewPoster(&fakeCreator{tweet: &twitter.Tweet{ID: "1"}})
	if err := p.Post(context.Background(), "hi"); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(*copied) != 0 {
		t.Fatalf("expected no clipboard writes, got %v", *copied)
	}
}

func TestPoster_DistinctSessions(t *testing.T) {
	a := NewPoster(&fakeCreator{})
	b := NewPoster(&fakeCreator{})
	if a.SessionID() == b.SessionID() {
		t.Fatalf("expected distinct session ids")
	}
}
