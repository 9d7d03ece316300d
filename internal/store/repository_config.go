// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Well-known installation parameters.
const (
	// ParamMasterPasswordHash is the bcrypt hash of the live master passphrase.
	ParamMasterPasswordHash = "masterPwd"
)

type configRepository struct {
	q DBTX
	b sq.StatementBuilderType
}

func NewConfigRepository(q DBTX, b sq.StatementBuilderType) ConfigRepository {
	return &configRepository{q: q, b: b}
}

// GetParam returns the value of an installation parameter or
// [models.ErrNotFound].
func (r *configRepository) GetParam(ctx context.Context, name string) (string, error) {
	query, args, err := r.b.Select("value").
		From("config").
		Where(sq.Eq{"parameter": name}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		return "", mapReadError(err)
	}
	return value, nil
}

// SetParam inserts or replaces an installation parameter.
func (r *configRepository) SetParam(ctx context.Context, name, value string) error {
	query, args, err := r.b.Insert("config").
		Columns("parameter", "value").
		Values(name, value).
		Suffix("ON CONFLICT (parameter) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError(err)
	}
	return nil
}
