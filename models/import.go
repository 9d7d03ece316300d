// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// ImportOptions are supplied by the caller and stay immutable for one run.
// Passphrases live only for the duration of the run and are never persisted.
type ImportOptions struct {
	// Delimiter separates CSV fields. Zero means ','.
	Delimiter rune `json:"delimiter"`

	// ExportPassphrase decrypts an encrypted native XML payload and the
	// per-account passwords it carries.
	ExportPassphrase string `json:"-"`

	// MasterPassphrase is checked against the vault's master-key hash to
	// decide whether imported password ciphertext can be kept as is.
	MasterPassphrase string `json:"-"`

	// DefaultUserID and DefaultGroupID own every imported account.
	DefaultUserID  int64 `json:"default_user_id"`
	DefaultGroupID int64 `json:"default_group_id"`

	// Directory holds the options used by directory imports only.
	Directory DirectoryOptions `json:"directory"`
}

// DirectoryOptions drive a directory (LDAP) import.
type DirectoryOptions struct {
	// Filter overrides the built-in object filter when non-empty.
	Filter string `json:"filter"`

	// Mapping names the attributes holding the imported fields.
	Mapping DirectoryAttributeMapping `json:"mapping"`

	// DefaultGroupID and DefaultProfileID are assigned to imported users.
	DefaultGroupID   int64 `json:"default_group_id"`
	DefaultProfileID int64 `json:"default_profile_id"`
}

// DirectoryImportRequest is the JSON body of the LDAP import routes. The
// body is optional.
type DirectoryImportRequest struct {
	DefaultUserID  int64            `json:"default_user_id"`
	DefaultGroupID int64            `json:"default_group_id"`
	Directory      DirectoryOptions `json:"directory"`
}

// DirectoryAttributeMapping maps vault fields to directory attribute names.
type DirectoryAttributeMapping struct {
	GroupName    string `json:"group_name" env:"GROUP_NAME"`
	UserFullName string `json:"user_full_name" env:"USER_FULL_NAME"`
	UserLogin    string `json:"user_login" env:"USER_LOGIN"`
	UserEmail    string `json:"user_email" env:"USER_EMAIL"`
}

// DefaultDirectoryAttributeMapping returns the attribute names used by
// OpenLDAP and Active Directory for the imported fields.
func DefaultDirectoryAttributeMapping() DirectoryAttributeMapping {
	return DirectoryAttributeMapping{
		GroupName:    "cn",
		UserFullName: "displayName",
		UserLogin:    "uid",
		UserEmail:    "mail",
	}
}

// DirectoryObject is a single entry returned by a directory search.
type DirectoryObject struct {
	DN         string
	Attributes map[string][]string
}

// Attribute returns the first value of the named attribute, or "".
// Attribute descriptions are case-insensitive in LDAP, so "displayname"
// finds a "displayName" attribute.
func (o DirectoryObject) Attribute(name string) string {
	values, ok := o.Attributes[name]
	if !ok {
		for key, v := range o.Attributes {
			if strings.EqualFold(key, name) {
				values = v
				break
			}
		}
	}
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

// ImportFailure describes one record skipped by a run.
type ImportFailure struct {
	// Record is the name of the offending record (account, group, login...).
	Record string `json:"record"`

	// Position locates the record in the source ("line 4", "Group/Entry 2", a DN).
	Position string `json:"position"`

	Reason string `json:"reason"`
}

// DirectoryTally counts objects processed by a directory import.
type DirectoryTally struct {
	Seen    int `json:"seen"`
	Synced  int `json:"synced"`
	Errored int `json:"errored"`
}

// ImportResult is the tally returned by a successful run.
type ImportResult struct {
	ID       string          `json:"id"`
	Format   string          `json:"format"`
	Imported int             `json:"imported"`
	Skipped  int             `json:"skipped"`
	Failures []ImportFailure `json:"failures,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`

	Directory *DirectoryTally `json:"directory,omitempty"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
