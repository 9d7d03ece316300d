// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-import/models"
)

// Repositories bundles every repository bound to the same [DBTX].
type Repositories struct {
	AccountRepository   AccountRepository
	CategoryRepository  CategoryRepository
	ClientRepository    ClientRepository
	TagRepository       TagRepository
	UserGroupRepository UserGroupRepository
	UserRepository      UserRepository
	ConfigRepository    ConfigRepository

	// Savepoints is set only for repositories bound to a transaction.
	Savepoints *Savepoints
}

// NewRepositories binds all repositories to q, building queries for dialect.
func NewRepositories(q DBTX, dialect Dialect) *Repositories {
	b := builder(dialect)
	return &Repositories{
		AccountRepository:   NewAccountRepository(q, b),
		CategoryRepository:  NewCategoryRepository(q, b),
		ClientRepository:    NewClientRepository(q, b),
		TagRepository:       NewTagRepository(q, b),
		UserGroupRepository: NewUserGroupRepository(q, b),
		UserRepository:      NewUserRepository(q, b),
		ConfigRepository:    NewConfigRepository(q, b),
	}
}

// insertReturningID runs an INSERT with a RETURNING id clause. Both
// PostgreSQL and SQLite (3.35+) support it.
func insertReturningID(ctx context.Context, q DBTX, insert sq.InsertBuilder) (int64, error) {
	return scanInsertedID(ctx, q, insert.Suffix("RETURNING id"))
}

// insertUniqueReturningID inserts a row that is unique on column. A conflict
// yields no row instead of a constraint error, which would abort an open
// PostgreSQL transaction, and is reported as [models.ErrAlreadyExists].
func insertUniqueReturningID(ctx context.Context, q DBTX, insert sq.InsertBuilder, column string) (int64, error) {
	id, err := scanInsertedID(ctx, q, insert.Suffix("ON CONFLICT ("+column+") DO NOTHING RETURNING id"))
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrAlreadyExists
	}
	return id, err
}

func scanInsertedID(ctx context.Context, q DBTX, insert sq.InsertBuilder) (int64, error) {
	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}
		return 0, mapWriteError(err)
	}

	return id, nil
}
