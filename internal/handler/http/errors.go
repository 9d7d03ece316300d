// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors returned while reading the "Authorization" header.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header has no token part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Errors returned while reading import requests.
var (
	ErrMissingFile      = errors.New("multipart field `file` is required")
	ErrInvalidForm      = errors.New("invalid multipart form")
	ErrInvalidOption    = errors.New("invalid import option")
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrUploadTooLarge   = errors.New("uploaded file is too large")
	ErrChecksumMismatch = errors.New("integrity check failed")
)
