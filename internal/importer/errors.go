// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"errors"
	"fmt"
)

// Fatal errors. Any of them aborts the run and rolls the transaction back.
var (
	// ErrUnsupportedFormat is returned when the declared content type is not
	// accepted or the originating application of an XML file is unknown.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrImport marks a schema violation of the input (e.g. a CSV row with
	// the wrong number of fields).
	ErrImport = errors.New("import error")

	// ErrNoLinesRead is returned for a CSV file without data rows.
	ErrNoLinesRead = fmt.Errorf("%w: no lines read from the file", ErrImport)

	// ErrInvalidFormat is returned when a native document lacks a required
	// section or its version cannot be parsed.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrMissingPassphrase is returned when a document carries encrypted data
	// and no export passphrase was supplied.
	ErrMissingPassphrase = errors.New("encrypted data found but no passphrase was given")

	// ErrWrongPassphrase is returned when the export passphrase does not match
	// the document, or decrypted data is not a valid document fragment.
	ErrWrongPassphrase = errors.New("wrong encryption passphrase")

	// ErrOldVersion is returned when a password of a document exported before
	// version 2.10 has to be re-encrypted.
	ErrOldVersion = errors.New("exported with an old version, <= 2.10")
)

// Recoverable errors. They are recorded as failures of a single record.
var (
	// ErrMissingReference is returned for a CSV row with a blank client or
	// category name.
	ErrMissingReference = errors.New("client and category are required")

	// ErrUnresolvedReference is returned when an account points at a
	// document-local id that was not resolved.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrMissingAttribute is returned for a directory object without a
	// mapped attribute. Such objects are skipped silently.
	ErrMissingAttribute = errors.New("missing required attribute")
)

// ErrInvalidDirectoryDefaults is returned before a directory user import
// when the default group or profile given to imported users does not exist.
var ErrInvalidDirectoryDefaults = errors.New("invalid directory defaults")

// ErrDirectoryNotConfigured is returned by directory operations when the
// service was built without a [DirectorySearcher].
var ErrDirectoryNotConfigured = errors.New("directory import is not configured")

// LineError locates a fatal error in a line-oriented input.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
