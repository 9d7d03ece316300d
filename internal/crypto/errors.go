// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrUnsupportedVersion is returned for documents exported before 2.10,
	// whose encryption scheme cannot be reversed.
	ErrUnsupportedVersion = errors.New("exported with an old version, <= 2.10")

	// ErrCiphertextTooShort is returned when a blob is shorter than its
	// fixed-size header.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrInvalidKey is returned when the per-record key cannot be unwrapped.
	ErrInvalidKey = errors.New("invalid record key")

	// ErrDecryptionFailed is returned when GCM authentication fails.
	ErrDecryptionFailed = errors.New("decryption failed")
)
