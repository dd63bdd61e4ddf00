// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db provides the data access layer for yapfastr: the post history
// and the personal dictionary. It abstracts the underlying database (SQLite,
// PostgreSQL or MySQL) behind the Store interface using bun.
package db // import "github.com/yapfastr/yapfastr/internal/db"
