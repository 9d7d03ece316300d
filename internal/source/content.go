// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// DefaultMaxSize bounds files read by a source created without a limit.
const DefaultMaxSize int64 = 32 << 20

// knownTypes covers extensions missing from the platform MIME tables.
var knownTypes = map[string]string{
	".csv": "text/csv",
	".xml": "text/xml",
}

// contentType guesses the MIME type of name from its extension, then from
// the first bytes of data.
func contentType(name string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := knownTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return http.DetectContentType(data)
}

// readAll reads r fully, failing with ErrFileTooLarge past maxSize bytes.
func readAll(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, maxSize)
	}
	return data, nil
}
