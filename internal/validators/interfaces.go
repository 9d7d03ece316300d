// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault records before they are written. The
// vault services run every imported account, user and reference entity
// through a [Validator]; a rejected record is skipped by the import run.
package validators

import "context"

// Validator checks obj. When fields are given only those fields are
// checked; unknown types are rejected.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
