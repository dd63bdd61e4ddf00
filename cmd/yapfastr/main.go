// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// Command yapfastr opens a small popup to compose and post a tweet.
package main

import (
	"os"

	"github.com/yapfastr/yapfastr/internal/logging"
	"github.com/yapfastr/yapfastr/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
