// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.
// Package config provides configuration loading, merging, and persistence
// helpers for yapfastr. It uses Viper for file/env/flag parsing, godotenv for
// .env files holding credentials, and exposes helpers to write a default
// configuration file.
package config
