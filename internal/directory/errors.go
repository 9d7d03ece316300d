// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package directory

import "errors"

var (
	ErrNotConfigured = errors.New("directory server is not configured")
	ErrInvalidFilter = errors.New("invalid search filter")
	ErrConnect       = errors.New("error connecting to directory server")
	ErrBind          = errors.New("error binding to directory server")
	ErrSearch        = errors.New("error searching directory")
)
