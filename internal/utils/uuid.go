// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewImportID returns a UUIDv7 so import run ids sort by start time. When the
// clock source fails it degrades to a random UUIDv4.
func NewImportID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
