// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the import HTTP API. It lets the
// vault-import command push a file or trigger a directory import on a remote
// server instead of writing to the database directly.
//
// Transport errors are mapped from status codes by mapHTTPError so callers
// can use [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrRejected] for 422).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-vault-import/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/import_client_mock.go -package=mock

// ImportClient talks to a remote import server.
type ImportClient interface {
	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)

	// ImportFile uploads one file with its options and returns the tally of
	// the run.
	ImportFile(ctx context.Context, upload FileUpload) (models.ImportResult, error)

	// ImportDirectoryGroups and ImportDirectoryUsers run a directory import
	// against the server's configured LDAP connection.
	ImportDirectoryGroups(ctx context.Context, req models.DirectoryImportRequest) (models.ImportResult, error)
	ImportDirectoryUsers(ctx context.Context, req models.DirectoryImportRequest) (models.ImportResult, error)
}

// FileUpload is a file sent to POST /api/import.
type FileUpload struct {
	Name string
	Body io.Reader

	// ContentType is declared on the file part. Empty lets the client sniff it.
	ContentType string

	// Delimiter is sent only when non-zero; the server default applies otherwise.
	Delimiter        rune
	ExportPassphrase string
	MasterPassphrase string
	DefaultUserID    int64
	DefaultGroupID   int64
}
