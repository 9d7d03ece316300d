// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the vault's relational storage layer.
//
// A [DB] wraps a *sql.DB opened with either the pgx (PostgreSQL) or the
// go-sqlite3 driver and knows which SQL dialect it speaks. Repositories are
// bound to a [DBTX], so the same code runs against the pool or inside a
// transaction opened with [DB.WithTx]. Queries are built with squirrel using
// the placeholder format of the dialect.
//
// Unique constraint violations are reported as [models.ErrAlreadyExists] and
// empty lookups as [models.ErrNotFound] regardless of the backend.
package store
