// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import "errors"

var (
	ErrFileNotFound = errors.New("import file not found")
	ErrFileTooLarge = errors.New("import file is too large")
	ErrReadFile     = errors.New("error reading import file")
)
