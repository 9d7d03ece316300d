// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
)

// Export format versions, as comparable integers ("3.2.0" -> 320).
const (
	// MinSupportedVersion is the first export format whose encryption can be
	// reversed.
	MinSupportedVersion = 210

	// ArmoredVersion is the first export format storing ciphertext in the
	// cipher's own hex armor. Older formats add a base64 layer on top.
	ArmoredVersion = 320
)

// VersionedDecrypter decrypts ciphertext exported by a given format version.
type VersionedDecrypter struct {
	cipher Cipher
}

// NewVersionedDecrypter wraps c with the version dispatch rules.
func NewVersionedDecrypter(c Cipher) *VersionedDecrypter {
	return &VersionedDecrypter{cipher: c}
}

// Decrypt dispatches on version:
//   - version >= 320: ciphertext is passed to the cipher as is;
//   - 210 <= version < 320: ciphertext is base64-decoded first;
//   - version < 210: [ErrUnsupportedVersion].
func (v *VersionedDecrypter) Decrypt(version int, ciphertext, key, passphrase string) ([]byte, error) {
	switch {
	case version >= ArmoredVersion:
		return v.cipher.Decrypt(ciphertext, key, passphrase)
	case version >= MinSupportedVersion:
		raw, err := base64.StdEncoding.DecodeString(ciphertext)
		if err != nil {
			return nil, fmt.Errorf("decode legacy ciphertext: %w", err)
		}
		return v.cipher.Decrypt(string(raw), key, passphrase)
	default:
		return nil, fmt.Errorf("%w (version %d)", ErrUnsupportedVersion, version)
	}
}
