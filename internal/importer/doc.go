// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package importer turns external credential data into vault records.
//
// A run starts at [Service.ImportFile] (CSV, native XML and KeePass XML
// files) or at [Service.ImportDirectoryGroups] / [Service.ImportDirectoryUsers]
// (LDAP). Each run executes inside one vault transaction provided by a
// [Transactor]: a fatal error rolls back everything, while per-record
// failures are collected into the returned [models.ImportResult] and the
// transaction commits whatever succeeded.
//
// Reference entities (categories, clients, tags) are created at most once per
// distinct name within a run. The [ResolutionCache] that enforces this is
// created per run and never shared.
package importer
