// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"

	"github.com/yapfastr/yapfastr/core/composer"
	"github.com/yapfastr/yapfastr/internal/config"
	"github.com/yapfastr/yapfastr/internal/db"
	"github.com/yapfastr/yapfastr/internal/i18n"
	"github.com/yapfastr/yapfastr/internal/logging"
	"github.com/yapfastr/yapfastr/internal/twitter"
	"github.com/yapfastr/yapfastr/internal/uiadapters"
)

// services bundles what a compose session needs for one invocation.
type services struct {
	cfg    config.Config
	store  *db.BunStore // nil when the database could not be opened
	poster *uiadapters.Poster
}

// openServices opens the database and builds the poster. A database that
// cannot be opened disables history and personal words but never blocks
// posting.
func openServices(ctx context.Context, cfg config.Config) *services {
	svc := &services{cfg: cfg}
	if st, err := db.NewStoreFromDSN(cfg.Database.Type, cfg.Database.Dsn); err != nil {
		logging.Warnf("history unavailable: %v", err)
	} else {
		svc.store = st
	}

	client := twitter.NewClient(twitter.Credentials{
		ConsumerKey:       cfg.Twitter.ConsumerKey,
		ConsumerSecret:    cfg.Twitter.ConsumerSecret,
		AccessToken:       cfg.Twitter.AccessToken,
		AccessTokenSecret: cfg.Twitter.AccessTokenSecret,
	}, twitter.WithBaseURL(cfg.Twitter.APIURL))

	opts := []uiadapters.PosterOption{uiadapters.WithClipboard(cfg.Clipboard)}
	if svc.store != nil && cfg.History.Enabled {
		opts = append(opts, uiadapters.WithRecorder(svc.store))
	}
	svc.poster = uiadapters.NewPoster(client, opts...)
	return svc
}

// NewComposer starts a compose session dispatching through d. Spell
// checking is skipped when the word lists cannot be loaded.
func (s *services) NewComposer(ctx context.Context, d composer.Dispatcher, opts ...composer.Option) *composer.Composer {
	var words uiadapters.WordSource
	if s.store != nil {
		words = s.store
	}
	all := []composer.Option{composer.WithDispatcher(d), composer.WithContext(ctx)}
	if sp, err := uiadapters.NewSpeller(ctx, s.cfg.Dictionary.Paths, words); err != nil {
		logging.Warnf("spell checking disabled: %v", err)
	} else {
		all = append(all, composer.WithSpeller(sp))
	}
	all = append(all, opts...)
	return composer.New(composer.Config{Verified: s.cfg.Verified}, s.poster, all...)
}

func (s *services) Close() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		logging.Debugf("closing database: %v", err)
	}
}

// openStore opens the database for the history and dict commands, which
// cannot do anything without it.
func openStore() (*db.BunStore, error) {
	return db.NewStoreFromDSN(appConfig.Database.Type, appConfig.Database.Dsn)
}

func requireHistory() error {
	if !appConfig.History.Enabled {
		return errors.New(i18n.T("cli.error.history_disabled"))
	}
	return nil
}
