// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/store"
)

// TxRunner runs a function with repositories bound to one transaction.
// [store.DB] implements it.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, repos *store.Repositories) error) error
}

// transactor binds a fresh vault to every transaction it opens.
type transactor struct {
	db       TxRunner
	settings VaultSettings

	logger *logger.Logger
}

func NewTransactor(db TxRunner, settings VaultSettings, logger *logger.Logger) importer.Transactor {
	return &transactor{db: db, settings: settings, logger: logger}
}

func (t *transactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context, vault importer.Vault) error) error {
	return t.db.WithTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		return fn(ctx, NewVault(repos, t.settings, t.logger))
	})
}
