// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrTooLarge            = errors.New("upload too large")
	ErrUnsupportedFormat   = errors.New("unsupported import format")
	ErrRejected            = errors.New("import rejected")
	ErrBadGateway          = errors.New("directory unavailable")
	ErrUnavailable         = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

// ServerError carries the message and, for CSV rejections, the offending
// line reported by the server.
type ServerError struct {
	Status  int
	Message string
	Line    int
	Err     error
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Err
}
