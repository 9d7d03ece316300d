// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-import/models"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with the transactional handle and then
// commits on success or rolls back on error or panic. Panics are rethrown.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	err = fn(ctx, tx)
	return err
}

// Savepoints nests savepoints inside an open transaction. PostgreSQL and
// SQLite share the SAVEPOINT syntax. It is not safe for concurrent use.
type Savepoints struct {
	tx  DBTX
	seq int
}

func NewSavepoints(tx DBTX) *Savepoints {
	return &Savepoints{tx: tx}
}

// WithSavepoint runs fn inside a fresh savepoint. When fn fails its writes
// are rolled back and the transaction stays usable; fn's error is returned
// as is. Failures to manage the savepoint itself wrap [models.ErrSavepoint].
func (s *Savepoints) WithSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	s.seq++
	name := fmt.Sprintf("record_%d", s.seq)

	if err := s.exec(ctx, "SAVEPOINT "+name); err != nil {
		return err
	}

	if err := fn(ctx); err != nil {
		if rbErr := s.exec(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		if relErr := s.exec(ctx, "RELEASE SAVEPOINT "+name); relErr != nil {
			return errors.Join(err, relErr)
		}
		return err
	}

	return s.exec(ctx, "RELEASE SAVEPOINT "+name)
}

func (s *Savepoints) exec(ctx context.Context, statement string) error {
	if _, err := s.tx.ExecContext(ctx, statement); err != nil {
		return fmt.Errorf("%w: %s: %w", models.ErrSavepoint, statement, err)
	}
	return nil
}
