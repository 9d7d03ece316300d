// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"

	"github.com/MKhiriev/go-vault-import/internal/config"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/migrations"
)

// Dialect is the SQL flavour spoken by a [DB].
type Dialect string

const (
	DialectPostgres Dialect = config.DriverPostgres
	DialectSQLite   Dialect = config.DriverSQLite
)

// maxConnectRetries bounds the ping attempts made while the database is
// still starting up.
const maxConnectRetries = 5

// DB is a connection pool together with the dialect it was opened for.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Repositories returns repositories bound to the pool itself.
func (db *DB) Repositories() *Repositories {
	return NewRepositories(db.DB, db.dialect)
}

// WithTx runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	return WithTx(ctx, db.DB, nil, func(ctx context.Context, tx DBTX) error {
		repos := NewRepositories(tx, db.dialect)
		repos.Savepoints = NewSavepoints(tx)
		return fn(ctx, repos)
	})
}

// builder returns a squirrel statement builder using the placeholder format
// of the dialect.
func builder(dialect Dialect) sq.StatementBuilderType {
	if dialect == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// pingWithRetry pings conn with exponential backoff. Errors the classifier
// does not consider [Retryable] stop the retries immediately.
func pingWithRetry(ctx context.Context, conn *sql.DB, classifier ErrorClassificator, log *logger.Logger) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxConnectRetries),
		ctx,
	)

	return backoff.RetryNotify(func() error {
		err := conn.PingContext(ctx)
		if err != nil && classifier.Classify(err) != Retryable {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		log.Warn().Err(err).
			Str("func", "pingWithRetry").
			Dur("retry_in", wait).
			Msg("database is not ready yet")
	})
}
