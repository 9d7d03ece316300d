// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a server without a token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLDAPConfigs indicates an LDAP URL without a base DN.
	ErrInvalidLDAPConfigs = errors.New("invalid ldap configuration")
	// ErrInvalidImportConfigs indicates a delimiter longer than one character.
	ErrInvalidImportConfigs = errors.New("invalid import configuration")
)
