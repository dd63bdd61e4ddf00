// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of Yapfastr: `ui/cli` for the
// command line and `ui/tui` for the compose popup.
package ui
