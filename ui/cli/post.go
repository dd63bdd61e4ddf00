// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yapfastr/yapfastr/core/composer"
	"github.com/yapfastr/yapfastr/core/loop"
	"github.com/yapfastr/yapfastr/internal/i18n"
)

func newPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post [text...]",
		Short: i18n.T("cli.post.short"),
		Long: `Posts the given text through the same validation as the popup and prints
it on success. Without arguments the text is read from stdin.

Examples:
  yapfastr post hello world
  echo "hello world" | yapfastr post`,
		RunE: runPost,
	}
}

func runPost(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("could not read stdin: %w", err)
		}
		text = string(in)
	}
	if strings.TrimSpace(text) == "" {
		return errors.New(i18n.T("cli.error.empty"))
	}
	if err := requireCredentials(); err != nil {
		return err
	}

	ctx := cmd.Context()
	svc := openServices(ctx, appConfig)
	defer svc.Close()

	posted, ok, err := postText(ctx, text, func(d composer.Dispatcher, opts ...composer.Option) *composer.Composer {
		return svc.NewComposer(ctx, d, opts...)
	})
	if err != nil {
		return err
	}
	if ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), posted)
	}
	return nil
}

// composerFactory builds a session bound to the given dispatcher.
type composerFactory func(d composer.Dispatcher, opts ...composer.Option) *composer.Composer

// postText runs one headless session for text on its own loop and waits for
// the outcome.
func postText(ctx context.Context, text string, build composerFactory) (string, bool, error) {
	l := loop.New()
	var (
		failed  bool
		failure string
	)
	comp := build(l, composer.WithCompletionHook(func(success bool, message string) {
		if !success {
			failed, failure = true, message
			l.Close()
		}
	}))
	go func() {
		<-comp.Done()
		l.Close()
	}()

	comp.Edit(composer.Prefix + text)
	if err := comp.Submit(); err != nil {
		banner := comp.State().Error
		comp.Cancel()
		var verr *composer.ValidationError
		if errors.As(err, &verr) {
			return "", false, fmt.Errorf("%s (%d/%d)", banner, verr.Count, verr.Limit)
		}
		return "", false, err
	}

	if err := l.Run(ctx); err != nil {
		comp.Cancel()
		return "", false, err
	}
	if failed {
		comp.Cancel()
		return "", false, &composer.PostError{Message: failure}
	}

	posted, ok := comp.Result()
	return posted, ok, nil
}
