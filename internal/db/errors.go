// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when attempting to insert a record that already exists.
var ErrDuplicate = errors.New("duplicate record")

// MapDBError maps common constraint violations of the supported drivers to
// package-level sentinel errors. The mapping is string-based so no driver
// package has to be imported here.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry (1062), Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}
