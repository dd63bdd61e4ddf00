// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package uiadapters contains thin adapters that bridge the composer's
// capability interfaces to concrete infrastructure: the Twitter client, the
// history store, the word-list speller and the system clipboard. Adapters are
// small and deterministic so UIs can depend on stable interfaces while the
// implementation lives in dedicated packages.
package uiadapters
