// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package composer

import (
	"errors"
	"fmt"
)

var (
	// ErrLimitExceeded is wrapped by ValidationError when the content is
	// longer than Limit and the account is not verified.
	ErrLimitExceeded = errors.New("exceeded character limit")
	// ErrLocked is returned by Submit while a post is in flight.
	ErrLocked = errors.New("submission already in progress")
	// ErrClosed is returned by Submit after the session terminated.
	ErrClosed = errors.New("compose session closed")
)

// ValidationError is a local rejection of a submission. It never reaches the
// network.
type ValidationError struct {
	Err   error
	Count int
	Limit int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v (%d/%d)", e.Err, e.Count, e.Limit)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// PostError is a failure reported by the post capability. Message is shown to
// the user verbatim.
type PostError struct {
	Message string
}

func (e *PostError) Error() string { return e.Message }
