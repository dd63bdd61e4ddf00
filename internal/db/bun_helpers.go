// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
)

// WithTx runs fn inside a transaction, rolling back when fn returns an error.
func WithTx(ctx context.Context, bdb *bun.DB, fn func(ctx context.Context, tx bun.Tx) error) error {
	return bdb.RunInTx(ctx, &sql.TxOptions{}, fn)
}

// RunMigrations creates the tables this package needs when they are missing.
func RunMigrations(ctx context.Context, bdb *bun.DB) error {
	models := []any{(*PostModel)(nil), (*WordModel)(nil)}
	for _, m := range models {
		if _, err := bdb.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
