// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes vault imports over a REST API.
//
// Uploaded files and directory imports are handed to the import service
// after tracing, access logging, compression, checksum and JWT
// authentication middleware have run. Every response carries the run's
// tally as JSON, or an error mapped to a status code.
package http
