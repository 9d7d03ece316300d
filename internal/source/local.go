// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
)

// LocalSource reads import files from disk. With a base directory set,
// names are resolved inside it and cannot escape it.
type LocalSource struct {
	baseDir string
	maxSize int64

	logger *logger.Logger
}

func NewLocalSource(baseDir string, maxSize int64, logger *logger.Logger) *LocalSource {
	return &LocalSource{baseDir: baseDir, maxSize: maxSize, logger: logger}
}

func (s *LocalSource) Open(ctx context.Context, name string) (importer.FileHandle, error) {
	if err := ctx.Err(); err != nil {
		return importer.FileHandle{}, err
	}

	file, err := s.open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return importer.FileHandle{}, fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return importer.FileHandle{}, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	defer file.Close()

	data, err := readAll(file, s.maxSize)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "LocalSource.Open").Str("file", name).Msg("reading import file failed")
		return importer.FileHandle{}, err
	}

	return importer.FileHandle{
		Name:        name,
		ContentType: contentType(name, data),
		Body:        bytes.NewReader(data),
	}, nil
}

func (s *LocalSource) open(name string) (*os.File, error) {
	if s.baseDir == "" {
		return os.Open(name)
	}

	root, err := os.OpenRoot(s.baseDir)
	if err != nil {
		return nil, err
	}
	defer root.Close()

	return root.Open(name)
}
