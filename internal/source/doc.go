// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source loads import files from the local filesystem or an S3
// bucket into memory so the importer can rewind them while sniffing.
package source
