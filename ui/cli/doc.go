// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Yapfastr using Cobra.
// It wires configuration and default services, opens the popup when run
// without a subcommand, and provides headless commands that delegate to
// `core` packages and `internal/uiadapters`.
package cli
