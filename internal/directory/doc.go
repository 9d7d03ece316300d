// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package directory queries an LDAP server for the groups and users imported
// into the vault.
package directory
