// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/yapfastr/yapfastr/core/history"
	"github.com/yapfastr/yapfastr/core/model"
	"github.com/yapfastr/yapfastr/internal/i18n"
	"github.com/yapfastr/yapfastr/internal/twitter"
)

const historyTextWidth = 48

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: i18n.T("cli.history.short"),
		Args:  cobra.NoArgs,
	}
	list := newHistoryListCmd()
	cmd.RunE = list.RunE
	cmd.Flags().AddFlagSet(list.Flags())
	cmd.AddCommand(list, newHistoryExportCmd(), newHistoryImportCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: i18n.T("cli.history.list.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireHistory(); err != nil {
				return err
			}
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			posts, err := st.RecentPosts(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("could not read history: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(posts) == 0 {
				_, _ = fmt.Fprintln(out, i18n.T("cli.history.empty"))
				return nil
			}
			_, _ = fmt.Fprintln(out, renderHistory(posts))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show (0 for all)")
	return cmd
}

func renderHistory(posts []model.Post) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TIME", "STATUS", "TEXT", "RESULT")
	for _, p := range posts {
		result := p.Error
		if p.Status == model.PostStatusPosted && p.TweetID != "" {
			result = twitter.Tweet{ID: p.TweetID}.URL()
		}
		t.Row(
			p.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(p.Status),
			oneLine(p.Text, historyTextWidth),
			result,
		)
	}
	return t.String()
}

// oneLine flattens whitespace and shortens s to width runes.
func oneLine(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func newHistoryExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: i18n.T("cli.history.export.short"),
		Long: `Writes the post history and the personal dictionary into a single
Zstandard-compressed JSON file. '.zst' is appended to the name if missing.
Without -o a dated default name is used.

Examples:
  yapfastr history export
  yapfastr history export -o backup.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireHistory(); err != nil {
				return err
			}
			outputFile := output
			if outputFile == "" {
				outputFile = fmt.Sprintf("yapfastr-history-%s.json.zst", time.Now().Format("2006-01-02"))
			} else if !strings.HasSuffix(outputFile, ".zst") {
				outputFile += ".zst"
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			data, err := history.Collect(cmd.Context(), st)
			if err != nil {
				return err
			}
			f, err := os.OpenFile(outputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("could not create file: %w", err)
			}
			if err := history.WriteExport(data, f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.export.done", len(data.Posts), len(data.Words), outputFile))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	return cmd
}

func newHistoryImportCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: i18n.T("cli.history.import.short"),
		Long: `Merges an exported file into the current database. Entries that already
exist are skipped, so importing the same file twice is harmless.

Examples:
  yapfastr history import -i yapfastr-history-2026-10-19.json.zst`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireHistory(); err != nil {
				return err
			}
			inputFile := input
			if inputFile == "" && len(args) == 1 {
				inputFile = args[0]
			}
			if inputFile == "" {
				return fmt.Errorf("no input file given; use -i <file>")
			}

			f, err := os.Open(inputFile)
			if err != nil {
				return fmt.Errorf("could not open file: %w", err)
			}
			defer func() { _ = f.Close() }()
			data, err := history.ReadExport(f)
			if err != nil {
				return err
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			posts, words, err := history.Merge(cmd.Context(), st, data)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.import.done", posts, words))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "File written by 'history export'")
	return cmd
}
