// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize    = 16
	dataKeySize = 32
)

// Argon2Params tunes the key-encryption-key derivation.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultArgon2Params follows the OWASP (2024) recommendation:
// 1 iteration, 64 MiB, 4 lanes.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

// aesCipher is the AES-256-GCM implementation of [Cipher].
type aesCipher struct {
	params Argon2Params
	random io.Reader
}

// NewCipher constructs a [Cipher] deriving key-encryption keys with the
// given Argon2id parameters.
func NewCipher(params Argon2Params) Cipher {
	return &aesCipher{
		params: params,
		random: rand.Reader,
	}
}

// Encrypt implements [Cipher].
func (c *aesCipher) Encrypt(plaintext []byte, passphrase string) (string, string, error) {
	dataKey := make([]byte, dataKeySize)
	if _, err := io.ReadFull(c.random, dataKey); err != nil {
		return "", "", fmt.Errorf("generate data key: %w", err)
	}

	sealed, err := c.seal(dataKey, plaintext)
	if err != nil {
		return "", "", fmt.Errorf("encrypt data: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err = io.ReadFull(c.random, salt); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}

	wrappedKey, err := c.seal(c.deriveKEK(passphrase, salt), dataKey)
	if err != nil {
		return "", "", fmt.Errorf("wrap data key: %w", err)
	}

	return hex.EncodeToString(sealed), hex.EncodeToString(append(salt, wrappedKey...)), nil
}

// Decrypt implements [Cipher].
func (c *aesCipher) Decrypt(ciphertext string, key string, passphrase string) ([]byte, error) {
	rawKey, err := hex.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(rawKey) <= saltSize {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, ErrCiphertextTooShort)
	}

	salt, wrappedKey := rawKey[:saltSize], rawKey[saltSize:]
	dataKey, err := c.open(c.deriveKEK(passphrase, salt), wrappedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	sealed, err := hex.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}

	return c.open(dataKey, sealed)
}

func (c *aesCipher) deriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, c.params.Time, c.params.Memory, c.params.Threads, dataKeySize)
}

// seal encrypts data with AES-256-GCM and returns nonce ‖ ciphertext.
func (c *aesCipher) seal(key, data []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(c.random, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, data, nil), nil
}

// open splits nonce ‖ ciphertext and authenticates-then-decrypts it.
func (c *aesCipher) open(key, blob []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	plaintext, err := gcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
