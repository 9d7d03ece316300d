// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-import/internal/config"
	"github.com/MKhiriev/go-vault-import/internal/directory"
	handler "github.com/MKhiriev/go-vault-import/internal/handler/http"
	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/server"
	"github.com/MKhiriev/go-vault-import/internal/service"
	"github.com/MKhiriev/go-vault-import/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-import-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.RequireDatabase(); err != nil {
		log.Fatal().Err(err).Msg("invalid storage configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx := log.WithContext(context.Background())

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to the vault database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	var searcher importer.DirectorySearcher
	if cfg.LDAP.URL != "" {
		searcher = directory.NewSearcher(cfg.LDAP, log)
	}

	services := service.NewServices(db, searcher, *cfg, log)
	if cfg.App.MasterPassword != "" {
		if err = services.MasterKeyService.EnsureMasterKeyHash(ctx, cfg.App.MasterPassword); err != nil {
			log.Fatal().Err(err).Msg("error checking the master password")
		}
	}

	h := handler.NewHandler(services, handler.Settings{
		MaxUploadSize: cfg.Server.MaxUploadSize,
		Delimiter:     cfg.Import.DelimiterRune(),
	}, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
