// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-vault-import/internal/config"
	"github.com/MKhiriev/go-vault-import/internal/crypto"
	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/store"
	"github.com/MKhiriev/go-vault-import/internal/validators"
	"github.com/MKhiriev/go-vault-import/models"
)

type Services struct {
	AuthService      AuthService
	AppInfoService   AppInfoService
	MasterKeyService MasterKeyService
	ImportService    importer.ImportService
}

// NewServices wires the import pipeline over db. directory may be nil when
// no directory server is configured.
func NewServices(db *store.DB, directory importer.DirectorySearcher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	cipher := crypto.NewCipher(crypto.DefaultArgon2Params)
	hasher := crypto.NewPassphraseHasher(0)

	settings := VaultSettings{
		MasterPassword: cfg.App.MasterPassword,
		Cipher:         cipher,
		Hasher:         hasher,
		Validator:      validators.NewVaultValidator(),
	}

	importService := importer.NewImportService(importer.Dependencies{
		Transactor:  NewTransactor(db, settings, logger),
		Decrypter:   crypto.NewVersionedDecrypter(cipher),
		Passphrases: hasher,
		Directory:   directory,
		Notifier:    importer.NewLogNotifier(),
	}, importer.Settings{
		IntegrityKey: cfg.App.PasswordSalt,
		GroupFilter:  cfg.LDAP.GroupFilter,
		UserFilter:   cfg.LDAP.UserFilter,
		Directory: models.DirectoryOptions{
			Mapping:          cfg.LDAP.Mapping,
			DefaultGroupID:   cfg.LDAP.DefaultGroupID,
			DefaultProfileID: cfg.LDAP.DefaultProfileID,
		},
	}, logger)

	return &Services{
		AuthService:      NewAuthService(cfg.App, logger),
		AppInfoService:   NewAppInfoService(cfg.App, logger),
		MasterKeyService: NewMasterKeyService(db.Repositories().ConfigRepository, hasher, logger),
		ImportService:    importService,
	}
}
