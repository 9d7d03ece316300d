// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the vault's record encryption: a passphrase
// protected per-record key scheme, its version-aware decrypt path used when
// importing exported documents, and bcrypt passphrase hashes.
//
// Scheme:
//
//	dataKey    = random 32 bytes                               (per record)
//	KEK        = Argon2id(passphrase, salt)
//	key        = hex(salt ‖ nonce ‖ AES-GCM_KEK(dataKey))
//	ciphertext = hex(nonce ‖ AES-GCM_dataKey(plaintext))
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Cipher encrypts and decrypts single records under a passphrase.
type Cipher interface {
	// Encrypt wraps plaintext under a fresh per-record key protected by
	// passphrase. Both returned strings are hex armored.
	Encrypt(plaintext []byte, passphrase string) (ciphertext string, key string, err error)

	// Decrypt reverses Encrypt. A wrong passphrase or tampered key or
	// ciphertext fails the GCM authentication and returns an error.
	Decrypt(ciphertext string, key string, passphrase string) ([]byte, error)
}

// PassphraseHasher produces and checks one-way passphrase hashes.
type PassphraseHasher interface {
	Hash(passphrase string) (string, error)
	Matches(passphrase, hash string) bool
}
