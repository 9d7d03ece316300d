// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-vault-import/internal/config"
	"github.com/MKhiriev/go-vault-import/internal/directory"
	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/service"
	"github.com/MKhiriev/go-vault-import/internal/store"
)

// app holds what a command needs once the vault database is open.
type app struct {
	cfg      *config.StructuredConfig
	db       *store.DB
	services *service.Services
	log      *logger.Logger
}

// openApp loads the configuration, connects to the vault database and
// brings its schema up to date.
func (g *globalOptions) openApp(ctx context.Context, stderr io.Writer) (*app, context.Context, error) {
	cfg, err := config.LoadConfig(g.configPath)
	if err != nil {
		return nil, ctx, fmt.Errorf("load config: %w", err)
	}
	if err = cfg.RequireDatabase(); err != nil {
		return nil, ctx, err
	}

	log := logger.NewConsoleLogger("vault-import", stderr, g.verbose)
	ctx = log.WithContext(ctx)

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, ctx, fmt.Errorf("connect to vault database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, ctx, fmt.Errorf("apply migrations: %w", err)
	}

	var searcher importer.DirectorySearcher
	if cfg.LDAP.URL != "" {
		searcher = directory.NewSearcher(cfg.LDAP, log)
	}

	services := service.NewServices(db, searcher, *cfg, log)
	if cfg.App.MasterPassword != "" {
		if err = services.MasterKeyService.EnsureMasterKeyHash(ctx, cfg.App.MasterPassword); err != nil {
			db.Close()
			return nil, ctx, err
		}
	}

	return &app{cfg: cfg, db: db, services: services, log: log}, ctx, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
