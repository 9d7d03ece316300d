// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"unicode/utf8"
)

const (
	defaultDelimiter     = ","
	defaultMaxUploadSize = 32 << 20
	defaultLDAPPageSize  = 500
	defaultGroupNameAttr = "cn"
	defaultFullNameAttr  = "displayName"
	defaultUserLoginAttr = "uid"
	defaultUserEmailAttr = "mail"
)

// applyDefaults fills zero values that have a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Import.Delimiter == "" {
		cfg.Import.Delimiter = defaultDelimiter
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.LDAP.PageSize == 0 {
		cfg.LDAP.PageSize = defaultLDAPPageSize
	}

	m := &cfg.LDAP.Mapping
	if m.GroupName == "" {
		m.GroupName = defaultGroupNameAttr
	}
	if m.UserFullName == "" {
		m.UserFullName = defaultFullNameAttr
	}
	if m.UserLogin == "" {
		m.UserLogin = defaultUserLoginAttr
	}
	if m.UserEmail == "" {
		m.UserEmail = defaultUserEmailAttr
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress != "" && cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required to serve HTTP", ErrInvalidAppConfigs)
	}

	if cfg.LDAP.URL != "" && cfg.LDAP.BaseDN == "" {
		return fmt.Errorf("%w: base DN is required", ErrInvalidLDAPConfigs)
	}

	if utf8.RuneCountInString(cfg.Import.Delimiter) != 1 {
		return fmt.Errorf("%w: delimiter must be a single character", ErrInvalidImportConfigs)
	}

	return nil
}

// RequireDatabase reports an error when no DSN is configured. Commands that
// do not touch the vault (e.g. printing the version) skip it.
func (cfg *StructuredConfig) RequireDatabase() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	return nil
}

// DelimiterRune returns the configured CSV delimiter.
func (i Import) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(i.Delimiter)
	return r
}
