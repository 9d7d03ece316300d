// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a vault record assembled by an importer before it is handed to
// the vault. It doubles as the persisted account row once stored.
type Account struct {
	// AccountID is the internal identifier assigned by storage.
	AccountID int64 `json:"id"`

	Name  string `json:"name"`
	Login string `json:"login"`
	URL   string `json:"url"`
	Notes string `json:"notes"`

	// Password holds either ciphertext (when Key is set) or a plaintext
	// password the vault must wrap under its live master key (Key empty).
	Password string `json:"-"`

	// Key is the per-record key material protecting Password. Empty means
	// Password is plaintext.
	Key string `json:"-"`

	// CategoryID and ClientID must be resolved before submission.
	CategoryID int64 `json:"category_id"`
	ClientID   int64 `json:"client_id"`

	TagIDs []int64 `json:"tag_ids,omitempty"`

	// UserID and UserGroupID are the owners of the record.
	UserID      int64 `json:"user_id"`
	UserGroupID int64 `json:"user_group_id"`

	CreatedAt time.Time `json:"created_at"`
}

// HasPlaintextPassword reports whether the password still needs to be
// wrapped by the vault.
func (a Account) HasPlaintextPassword() bool {
	return a.Key == "" && a.Password != ""
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
