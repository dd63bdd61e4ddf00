// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yapfastr/yapfastr/internal/i18n"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: i18n.T("cli.dict.short"),
		Long: `Manages the personal dictionary. Its words are accepted by the spell
checker in addition to the configured word lists (dictionary.paths).`,
	}

	add := &cobra.Command{
		Use:   "add <word>...",
		Short: i18n.T("cli.dict.add.short"),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()
			n, err := st.AddWords(cmd.Context(), args...)
			if err != nil {
				return fmt.Errorf("could not add words: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.dict.added", n))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:     "remove <word>...",
		Aliases: []string{"rm"},
		Short:   i18n.T("cli.dict.remove.short"),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()
			n, err := st.RemoveWords(cmd.Context(), args...)
			if err != nil {
				return fmt.Errorf("could not remove words: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.dict.removed", n))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: i18n.T("cli.dict.list.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()
			words, err := st.Words(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not list words: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(words) == 0 {
				_, _ = fmt.Fprintln(out, i18n.T("cli.dict.empty"))
				return nil
			}
			for _, w := range words {
				_, _ = fmt.Fprintln(out, w)
			}
			return nil
		},
	}

	cmd.AddCommand(add, remove, list)
	return cmd
}
