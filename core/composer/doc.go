// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package composer holds the UI-agnostic state of a single compose session:
// the draft buffer with its reserved prefix, the character-limit validation,
// misspelling detection and the asynchronous post flow. UIs drive it through
// plain handler methods and render whatever it reports; they never own
// validation or submission state themselves.
package composer
