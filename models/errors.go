// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Sentinel errors shared between the storage layer and its consumers.
var (
	// ErrAlreadyExists is returned when an entity with the same unique name
	// (or login) is already stored.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrNotFound is returned when a lookup matches no entity.
	ErrNotFound = errors.New("entity not found")

	// ErrSavepoint is returned when a savepoint of an open transaction could
	// not be created, rolled back to or released. The transaction is then in
	// an unknown state and must not be committed.
	ErrSavepoint = errors.New("savepoint failed")
)
