// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the settings of the import server and the
// vault-import command.
//
// The server merges environment variables, then command-line flags, then the
// JSON file named by CONFIG or -c; a later source overrides the non-zero
// fields of an earlier one ([GetStructuredConfig]). The command line tool
// owns its flags and merges only the environment and the JSON file
// ([LoadConfig]).
package config
