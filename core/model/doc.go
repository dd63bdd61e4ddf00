// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.
// Package model defines the data models shared between the store, the
// export format and the UIs. These are plain structs kept minimal so
// serialization and DB adapters stay straightforward.
package model
