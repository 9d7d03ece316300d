// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrEmptyLogin         = errors.New("login is required")
	ErrLoginTooLong       = errors.New("login is too long")
	ErrEmailTooLong       = errors.New("email is too long")
	ErrUnresolvedCategory = errors.New("category is not resolved")
	ErrUnresolvedClient   = errors.New("client is not resolved")
	ErrInvalidTagID       = errors.New("invalid tag id")
	ErrKeyWithoutPassword = errors.New("key material given without a password")
	ErrInvalidOwnerID     = errors.New("invalid owner id")
)
