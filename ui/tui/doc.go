// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the compose popup as a bubbletea program. It holds
// presentation and input handling only; the session logic lives in
// `core/composer`.
package tui
