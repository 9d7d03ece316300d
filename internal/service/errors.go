// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoMasterPassword is returned when a plaintext password has to be
	// wrapped and the vault has no master password configured.
	ErrNoMasterPassword = errors.New("no master password configured")

	// ErrMasterPasswordMismatch is returned when the configured master
	// password does not match the hash already stored in the vault.
	ErrMasterPasswordMismatch = errors.New("master password does not match the stored master key")
)
