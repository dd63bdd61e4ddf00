// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version is set at link time via `-ldflags -X github.com/yapfastr/yapfastr/buildvars.Version=...`.
// It is empty for local or development builds.
var Version string

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}
